package models

import "time"

// Collection 商品集合
type Collection struct {
	ID        uint      `gorm:"primarykey" json:"id"`                    // 主键
	Title     string    `gorm:"type:varchar(255);not null" json:"title"` // 标题
	CreatedAt time.Time `gorm:"index" json:"created_at"`                 // 创建时间
	Products  []Product `gorm:"foreignKey:CollectionID" json:"-"`        // 集合下的商品
}

// TableName 指定表名
func (Collection) TableName() string {
	return "collections"
}
