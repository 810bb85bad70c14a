package repository

import (
	"errors"

	"github.com/storefront-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	Create(cart *models.Cart) error
	GetByID(id string) (*models.Cart, error)
	LockByID(id string) (*models.Cart, error)
	Delete(id string) error
	MergeItem(cartID string, productID uint, quantity int) (*models.CartItem, error)
	GetItem(cartID string, itemID uint) (*models.CartItem, error)
	ListItems(cartID string) ([]models.CartItem, error)
	ListItemsForCheckout(cartID string) ([]models.CartItem, error)
	UpdateItemQuantity(cartID string, itemID uint, quantity int) (int64, error)
	DeleteItem(cartID string, itemID uint) (int64, error)
	DeleteItemsByProduct(productID uint) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// Create 创建购物车
func (r *GormCartRepository) Create(cart *models.Cart) error {
	return r.db.Create(cart).Error
}

// GetByID 获取购物车及购物车项（含商品）
func (r *GormCartRepository) GetByID(id string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).Preload("Items.Product").Where("id = ?", id).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// LockByID 事务内锁定购物车行（postgres 使用 FOR UPDATE）
func (r *GormCartRepository) LockByID(id string) (*models.Cart, error) {
	var cart models.Cart
	if err := forUpdate(r.db).Where("id = ?", id).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// Delete 删除购物车及其全部购物车项
func (r *GormCartRepository) Delete(id string) error {
	if err := r.db.Where("cart_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	return r.db.Where("id = ?", id).Delete(&models.Cart{}).Error
}

// MergeItem 以单条 upsert 合并购物车项：已存在则数量累加，否则新建。
// 依赖 (cart_id, product_id) 唯一索引，并发添加不会产生重复行。
func (r *GormCartRepository) MergeItem(cartID string, productID uint, quantity int) (*models.CartItem, error) {
	item := models.CartItem{CartID: cartID, ProductID: productID, Quantity: quantity}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, err
	}

	var merged models.CartItem
	if err := r.db.Preload("Product").
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&merged).Error; err != nil {
		return nil, err
	}
	return &merged, nil
}

// GetItem 获取购物车中的单个购物车项
func (r *GormCartRepository) GetItem(cartID string, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Preload("Product").Where("id = ? AND cart_id = ?", itemID, cartID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// ListItems 获取购物车项（含商品）
func (r *GormCartRepository) ListItems(cartID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").Where("cart_id = ?", cartID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListItemsForCheckout 结算读取购物车项，商品行加共享锁以固定当前价格
func (r *GormCartRepository) ListItemsForCheckout(cartID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Where("cart_id = ?", cartID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}

	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	var products []models.Product
	if err := forShare(r.db).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	for i := range items {
		items[i].Product = byID[items[i].ProductID]
	}
	return items, nil
}

// UpdateItemQuantity 设置购物车项数量，返回受影响行数
func (r *GormCartRepository) UpdateItemQuantity(cartID string, itemID uint, quantity int) (int64, error) {
	result := r.db.Model(&models.CartItem{}).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Update("quantity", quantity)
	return result.RowsAffected, result.Error
}

// DeleteItem 删除购物车项，返回受影响行数
func (r *GormCartRepository) DeleteItem(cartID string, itemID uint) (int64, error) {
	result := r.db.Where("id = ? AND cart_id = ?", itemID, cartID).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

// DeleteItemsByProduct 删除所有购物车中引用该商品的购物车项
func (r *GormCartRepository) DeleteItemsByProduct(productID uint) error {
	return r.db.Where("product_id = ?", productID).Delete(&models.CartItem{}).Error
}
