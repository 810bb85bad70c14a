package models

import "time"

// Product 商品表
type Product struct {
	ID           uint      `gorm:"primarykey" json:"id"`                                    // 主键
	CollectionID uint      `gorm:"not null;index" json:"collection_id"`                     // 所属集合ID
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`                 // 标题
	Slug         string    `gorm:"uniqueIndex;not null" json:"slug"`                        // 唯一标识
	Description  string    `gorm:"type:text" json:"description"`                            // 描述
	UnitPrice    Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"` // 单价
	Inventory    int       `gorm:"not null;default:0" json:"inventory"`                     // 库存
	LastUpdate   time.Time `gorm:"autoUpdateTime" json:"last_update"`                       // 最后更新时间

	Collection *Collection `gorm:"foreignKey:CollectionID" json:"collection,omitempty"` // 所属集合
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
