package repository

import (
	"errors"

	"github.com/storefront-api/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(order *models.Order, items []models.OrderItem) error
	GetByID(id uint) (*models.Order, error)
	GetByIDAndCustomer(id, customerID uint) (*models.Order, error)
	ListAll() ([]models.Order, error)
	ListByCustomer(customerID uint) ([]models.Order, error)
	UpdatePaymentStatus(id uint, status string) (int64, error)
	WithTx(tx *gorm.DB) OrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

func (r *GormOrderRepository) withItems(query *gorm.DB) *gorm.DB {
	return query.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).Preload("Items.Product")
}

// Create 创建订单与订单项
func (r *GormOrderRepository) Create(order *models.Order, items []models.OrderItem) error {
	if err := r.db.Omit("Items").Create(order).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if len(items) > 0 {
		if err := r.db.Omit("Product").Create(&items).Error; err != nil {
			return err
		}
	}
	order.Items = items
	return nil
}

// GetByID 根据 ID 获取订单
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.withItems(r.db).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByIDAndCustomer 获取顾客自己的订单
func (r *GormOrderRepository) GetByIDAndCustomer(id, customerID uint) (*models.Order, error) {
	var order models.Order
	if err := r.withItems(r.db).Where("id = ? AND customer_id = ?", id, customerID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// ListAll 全部订单（员工视角）
func (r *GormOrderRepository) ListAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.withItems(r.db).Order("placed_at DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByCustomer 顾客订单列表
func (r *GormOrderRepository) ListByCustomer(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.withItems(r.db).Where("customer_id = ?", customerID).Order("placed_at DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdatePaymentStatus 更新支付状态，返回受影响行数
func (r *GormOrderRepository) UpdatePaymentStatus(id uint, status string) (int64, error) {
	result := r.db.Model(&models.Order{}).Where("id = ?", id).Update("payment_status", status)
	return result.RowsAffected, result.Error
}
