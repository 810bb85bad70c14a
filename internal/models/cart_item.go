package models

// CartItem 购物车项，同一购物车内每个商品只有一行
type CartItem struct {
	ID        uint   `gorm:"primarykey" json:"id"`                                                       // 主键
	CartID    string `gorm:"type:varchar(36);not null;uniqueIndex:idx_cart_items_cart_product" json:"-"` // 购物车ID
	ProductID uint   `gorm:"not null;uniqueIndex:idx_cart_items_cart_product;index" json:"product_id"`   // 商品ID
	Quantity  int    `gorm:"not null" json:"quantity"`                                                   // 数量

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
