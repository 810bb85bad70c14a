package repository

import (
	"errors"

	"github.com/storefront-api/internal/models"

	"gorm.io/gorm"
)

// CollectionRepository 集合数据访问接口
type CollectionRepository interface {
	ListWithProductCount() ([]CollectionWithCount, error)
	GetByID(id uint) (*models.Collection, error)
	LockByID(id uint) (*models.Collection, error)
	Create(collection *models.Collection) error
	Delete(id uint) error
	CountProducts(collectionID uint) (int64, error)
	WithTx(tx *gorm.DB) CollectionRepository
}

// GormCollectionRepository GORM 实现
type GormCollectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository 创建集合仓库
func NewCollectionRepository(db *gorm.DB) *GormCollectionRepository {
	return &GormCollectionRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCollectionRepository) WithTx(tx *gorm.DB) CollectionRepository {
	if tx == nil {
		return r
	}
	return &GormCollectionRepository{db: tx}
}

// ListWithProductCount 集合列表，附带商品数量
func (r *GormCollectionRepository) ListWithProductCount() ([]CollectionWithCount, error) {
	var rows []CollectionWithCount
	err := r.db.Model(&models.Collection{}).
		Select("collections.id, collections.title, COUNT(products.id) AS products_count").
		Joins("LEFT JOIN products ON products.collection_id = collections.id").
		Group("collections.id, collections.title").
		Order("collections.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID 根据 ID 获取集合
func (r *GormCollectionRepository) GetByID(id uint) (*models.Collection, error) {
	var collection models.Collection
	if err := r.db.First(&collection, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &collection, nil
}

// LockByID 事务内锁定集合行
func (r *GormCollectionRepository) LockByID(id uint) (*models.Collection, error) {
	var collection models.Collection
	if err := forUpdate(r.db).First(&collection, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &collection, nil
}

// Create 创建集合
func (r *GormCollectionRepository) Create(collection *models.Collection) error {
	return r.db.Create(collection).Error
}

// Delete 删除集合
func (r *GormCollectionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Collection{}, id).Error
}

// CountProducts 统计集合下商品数
func (r *GormCollectionRepository) CountProducts(collectionID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("collection_id = ?", collectionID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
