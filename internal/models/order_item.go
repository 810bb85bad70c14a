package models

// OrderItem 订单项，UnitPrice 为下单时的价格快照
type OrderItem struct {
	ID        uint  `gorm:"primarykey" json:"id"`                                    // 主键
	OrderID   uint  `gorm:"index;not null" json:"order_id"`                          // 订单ID
	ProductID uint  `gorm:"index;not null" json:"product_id"`                        // 商品ID
	UnitPrice Money `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"` // 单价快照
	Quantity  int   `gorm:"not null" json:"quantity"`                                // 数量

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
