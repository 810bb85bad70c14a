package service

import (
	"slices"
	"strings"
	"time"

	"github.com/storefront-api/internal/constants"
	"github.com/storefront-api/internal/models"
	"github.com/storefront-api/internal/repository"

	"gorm.io/datatypes"
)

// BirthDateLayout 生日的日期格式
const BirthDateLayout = "2006-01-02"

// CustomerProfile 顾客资料
type CustomerProfile struct {
	ID          uint    `json:"id"`
	UserID      uint    `json:"user_id"`
	Phone       string  `json:"phone"`
	BirthDate   *string `json:"birth_date"`
	Membership  string  `json:"membership"`
	OrdersCount int64   `json:"orders_count"`
}

// UpdateProfileInput 更新顾客资料输入
type UpdateProfileInput struct {
	Phone      *string
	BirthDate  *time.Time
	Membership *string
}

// CustomerHistory 顾客历史订单
type CustomerHistory struct {
	Customer CustomerProfile `json:"customer"`
	Orders   []OrderDetail   `json:"orders"`
}

// CustomerService 顾客服务
type CustomerService struct {
	repo      repository.CustomerRepository
	orderRepo repository.OrderRepository
}

// NewCustomerService 创建顾客服务
func NewCustomerService(repo repository.CustomerRepository, orderRepo repository.OrderRepository) *CustomerService {
	return &CustomerService{repo: repo, orderRepo: orderRepo}
}

// Me 获取当前用户的顾客资料，不存在时创建
func (s *CustomerService) Me(userID uint) (*CustomerProfile, error) {
	if userID == 0 {
		return nil, ErrUserRequired
	}
	customer, err := s.repo.GetOrCreateByUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.profile(customer)
}

// UpdateMe 更新当前用户的顾客资料
func (s *CustomerService) UpdateMe(userID uint, input UpdateProfileInput) (*CustomerProfile, error) {
	if userID == 0 {
		return nil, ErrUserRequired
	}
	if input.Membership != nil {
		membership := strings.ToUpper(strings.TrimSpace(*input.Membership))
		if !slices.Contains(constants.Memberships, membership) {
			return nil, ErrMembershipInvalid
		}
		input.Membership = &membership
	}
	customer, err := s.repo.GetOrCreateByUserID(userID)
	if err != nil {
		return nil, err
	}
	if input.Phone != nil {
		customer.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.BirthDate != nil {
		date := datatypes.Date(*input.BirthDate)
		customer.BirthDate = &date
	}
	if input.Membership != nil {
		customer.Membership = *input.Membership
	}
	if err := s.repo.Update(customer); err != nil {
		return nil, err
	}
	return s.profile(customer)
}

// List 顾客列表（含 orders_count）
func (s *CustomerService) List() ([]repository.CustomerWithOrderCount, error) {
	rows, err := s.repo.ListWithOrderCount()
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []repository.CustomerWithOrderCount{}
	}
	return rows, nil
}

// History 顾客历史订单
func (s *CustomerService) History(customerID uint) (*CustomerHistory, error) {
	customer, err := s.repo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	profile, err := s.profile(customer)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	history := &CustomerHistory{Customer: *profile, Orders: make([]OrderDetail, 0, len(orders))}
	for i := range orders {
		history.Orders = append(history.Orders, *buildOrderDetail(&orders[i]))
	}
	return history, nil
}

func (s *CustomerService) profile(customer *models.Customer) (*CustomerProfile, error) {
	count, err := s.repo.CountOrders(customer.ID)
	if err != nil {
		return nil, err
	}
	var birthDate *string
	if customer.BirthDate != nil {
		formatted := time.Time(*customer.BirthDate).Format(BirthDateLayout)
		birthDate = &formatted
	}
	return &CustomerProfile{
		ID:          customer.ID,
		UserID:      customer.UserID,
		Phone:       customer.Phone,
		BirthDate:   birthDate,
		Membership:  customer.Membership,
		OrdersCount: count,
	}, nil
}
