package repository

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	CollectionID uint
	// InventoryBelow 大于 0 时只返回库存低于该值的商品
	InventoryBelow int
	WithCollection bool
}

// CollectionWithCount 集合及其商品数量
type CollectionWithCount struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	ProductsCount int64  `json:"products_count"`
}

// CustomerWithOrderCount 顾客及其订单数量
type CustomerWithOrderCount struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"user_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Membership  string `json:"membership"`
	OrdersCount int64  `json:"orders_count"`
}
