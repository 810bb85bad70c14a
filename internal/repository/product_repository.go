package repository

import (
	"errors"

	"github.com/storefront-api/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	LockByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	UpdatePrice(id uint, price models.Money) error
	ClearInventory(ids []uint) (int64, error)
	Delete(id uint) error
	CountBySlug(slug string) (int64, error)
	CountOrderItems(productID uint) (int64, error)
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// List 商品列表
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, error) {
	var products []models.Product
	query := r.db.Model(&models.Product{})
	if filter.WithCollection {
		query = query.Preload("Collection")
	}
	if filter.CollectionID != 0 {
		query = query.Where("collection_id = ?", filter.CollectionID)
	}
	if filter.InventoryBelow > 0 {
		query = query.Where("inventory < ?", filter.InventoryBelow)
	}
	if err := query.Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID 根据 ID 获取商品
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// LockByID 事务内锁定商品行（postgres 使用 FOR UPDATE）
func (r *GormProductRepository) LockByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := forUpdate(r.db).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// UpdatePrice 更新单价
func (r *GormProductRepository) UpdatePrice(id uint, price models.Money) error {
	return r.db.Model(&models.Product{}).Where("id = ?", id).Update("unit_price", price).Error
}

// ClearInventory 批量清空库存，返回受影响行数
func (r *GormProductRepository) ClearInventory(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.Product{}).Where("id IN ?", ids).Update("inventory", 0)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete 物理删除商品
func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

// CountBySlug 统计 slug 数量
func (r *GormProductRepository) CountBySlug(slug string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountOrderItems 统计引用该商品的订单项数量
func (r *GormProductRepository) CountOrderItems(productID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.OrderItem{}).Where("product_id = ?", productID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
