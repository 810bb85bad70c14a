package models

import "time"

// Cart 购物车，ID 为 UUID 字符串
type Cart struct {
	ID        string     `gorm:"type:varchar(36);primarykey" json:"id"` // 购物车ID
	CreatedAt time.Time  `json:"created_at"`                            // 创建时间
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// TableName 指定表名
func (Cart) TableName() string {
	return "carts"
}
