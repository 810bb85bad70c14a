package models

import "time"

// Order 订单表
type Order struct {
	ID            uint      `gorm:"primarykey" json:"id"`                                             // 主键
	CustomerID    uint      `gorm:"index;not null" json:"customer"`                                   // 顾客ID
	PaymentStatus string    `gorm:"type:varchar(1);not null;default:'P';index" json:"payment_status"` // 支付状态
	PlacedAt      time.Time `gorm:"autoCreateTime;index" json:"placed_at"`                            // 下单时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
