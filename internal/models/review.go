package models

import "time"

// Review 商品评价
type Review struct {
	ID          uint      `gorm:"primarykey" json:"id"`                   // 主键
	ProductID   uint      `gorm:"not null;index" json:"product_id"`       // 商品ID
	Name        string    `gorm:"type:varchar(255);not null" json:"name"` // 评价人
	Description string    `gorm:"type:text;not null" json:"description"`  // 内容
	Date        time.Time `gorm:"autoCreateTime" json:"date"`             // 评价时间
}

// TableName 指定表名
func (Review) TableName() string {
	return "reviews"
}
