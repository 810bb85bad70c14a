package repository

import (
	"errors"

	"github.com/storefront-api/internal/constants"
	"github.com/storefront-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CustomerRepository 顾客数据访问接口
type CustomerRepository interface {
	GetByID(id uint) (*models.Customer, error)
	GetOrCreateByUserID(userID uint) (*models.Customer, error)
	Update(customer *models.Customer) error
	ListWithOrderCount() ([]CustomerWithOrderCount, error)
	CountOrders(customerID uint) (int64, error)
	WithTx(tx *gorm.DB) CustomerRepository
}

// GormCustomerRepository GORM 实现
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository 创建顾客仓库
func NewCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCustomerRepository) WithTx(tx *gorm.DB) CustomerRepository {
	if tx == nil {
		return r
	}
	return &GormCustomerRepository{db: tx}
}

// GetByID 根据 ID 获取顾客
func (r *GormCustomerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// GetOrCreateByUserID 幂等获取或创建顾客，user_id 唯一索引保证并发下只有一行
func (r *GormCustomerRepository) GetOrCreateByUserID(userID uint) (*models.Customer, error) {
	customer := models.Customer{UserID: userID, Membership: constants.MembershipBronze}
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&customer).Error; err != nil {
		return nil, err
	}
	var stored models.Customer
	if err := r.db.Where("user_id = ?", userID).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// Update 更新顾客资料
func (r *GormCustomerRepository) Update(customer *models.Customer) error {
	return r.db.Model(customer).Select("phone", "birth_date", "membership").Updates(customer).Error
}

// ListWithOrderCount 顾客列表，附带订单数量
func (r *GormCustomerRepository) ListWithOrderCount() ([]CustomerWithOrderCount, error) {
	var rows []CustomerWithOrderCount
	err := r.db.Model(&models.Customer{}).
		Select("customers.id, customers.user_id, users.first_name, users.last_name, customers.membership, COUNT(orders.id) AS orders_count").
		Joins("LEFT JOIN users ON users.id = customers.user_id").
		Joins("LEFT JOIN orders ON orders.customer_id = customers.id").
		Group("customers.id, customers.user_id, users.first_name, users.last_name, customers.membership").
		Order("users.first_name ASC, users.last_name ASC, customers.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountOrders 统计顾客订单数量
func (r *GormCustomerRepository) CountOrders(customerID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Order{}).Where("customer_id = ?", customerID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
