package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/storefront-api/internal/constants"
	"github.com/storefront-api/internal/logger"
	"github.com/storefront-api/internal/models"
	"github.com/storefront-api/internal/repository"

	"gorm.io/gorm"
)

// CheckoutInput 结算输入
type CheckoutInput struct {
	CartID string
	UserID uint
}

// Caller 当前请求身份，SeeAll 为 true 时可查看全部订单
type Caller struct {
	UserID uint
	SeeAll bool
}

// OrderItemDetail 订单项详情，total_price 按下单时的价格快照计算
type OrderItemDetail struct {
	models.OrderItem
	TotalPrice models.Money `json:"total_price"`
}

// OrderDetail 订单详情
type OrderDetail struct {
	ID            uint              `json:"id"`
	CustomerID    uint              `json:"customer"`
	PlacedAt      time.Time         `json:"placed_at"`
	PaymentStatus string            `json:"payment_status"`
	Items         []OrderItemDetail `json:"items"`
	TotalPrice    models.Money      `json:"total_price"`
}

// OrderService 订单服务
type OrderService struct {
	db           *gorm.DB
	orderRepo    repository.OrderRepository
	cartRepo     repository.CartRepository
	customerRepo repository.CustomerRepository
}

// NewOrderService 创建订单服务
func NewOrderService(db *gorm.DB, orderRepo repository.OrderRepository, cartRepo repository.CartRepository, customerRepo repository.CustomerRepository) *OrderService {
	return &OrderService{
		db:           db,
		orderRepo:    orderRepo,
		cartRepo:     cartRepo,
		customerRepo: customerRepo,
	}
}

// Checkout 将购物车原子地转换为订单：
// 获取或创建顾客、创建待支付订单、按当前单价生成订单项快照、删除购物车。
// 任一步骤失败则整体回滚，购物车保持不变。
func (s *OrderService) Checkout(ctx context.Context, input CheckoutInput) (*OrderDetail, error) {
	if input.UserID == 0 {
		return nil, ErrUserRequired
	}
	cartID, err := ParseCartID(strings.TrimSpace(input.CartID))
	if err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	var order *models.Order
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		cart, err := cartRepo.LockByID(cartID)
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrCartNotFound
		}

		customer, err := s.customerRepo.WithTx(tx).GetOrCreateByUserID(input.UserID)
		if err != nil {
			return err
		}

		cartItems, err := cartRepo.ListItemsForCheckout(cartID)
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrCartEmpty
		}

		order = &models.Order{
			CustomerID:    customer.ID,
			PaymentStatus: constants.PaymentStatusPending,
			PlacedAt:      time.Now(),
		}
		items := make([]models.OrderItem, 0, len(cartItems))
		for _, cartItem := range cartItems {
			if cartItem.Product == nil {
				return ErrProductNotFound
			}
			items = append(items, models.OrderItem{
				ProductID: cartItem.ProductID,
				UnitPrice: cartItem.Product.UnitPrice,
				Quantity:  cartItem.Quantity,
			})
		}
		if err := s.orderRepo.WithTx(tx).Create(order, items); err != nil {
			return err
		}
		return cartRepo.Delete(cartID)
	})
	if err != nil {
		if errors.Is(err, ErrCartNotFound) || errors.Is(err, ErrCartEmpty) || errors.Is(err, ErrProductNotFound) {
			return nil, err
		}
		log.Errorw("order_checkout_failed", "cart_id", cartID, "user_id", input.UserID, "error", err)
		return nil, ErrOrderCreateFailed
	}

	full, err := s.orderRepo.GetByID(order.ID)
	if err != nil || full == nil {
		log.Warnw("order_reload_after_checkout_failed", "order_id", order.ID, "error", err)
		full = order
	}
	detail := buildOrderDetail(full)
	log.Infow("order_placed",
		"order_id", detail.ID,
		"customer_id", detail.CustomerID,
		"item_count", len(detail.Items),
		"total", detail.TotalPrice.String(),
	)
	return detail, nil
}

// List 订单列表：SeeAll 时返回全部订单，否则仅返回自己的订单
func (s *OrderService) List(caller Caller) ([]OrderDetail, error) {
	var (
		orders []models.Order
		err    error
	)
	if caller.SeeAll {
		orders, err = s.orderRepo.ListAll()
	} else {
		customer, cerr := s.customerFor(caller)
		if cerr != nil {
			return nil, cerr
		}
		orders, err = s.orderRepo.ListByCustomer(customer.ID)
	}
	if err != nil {
		return nil, err
	}
	details := make([]OrderDetail, 0, len(orders))
	for i := range orders {
		details = append(details, *buildOrderDetail(&orders[i]))
	}
	return details, nil
}

// Get 订单详情，可见性与 List 相同
func (s *OrderService) Get(caller Caller, orderID uint) (*OrderDetail, error) {
	var (
		order *models.Order
		err   error
	)
	if caller.SeeAll {
		order, err = s.orderRepo.GetByID(orderID)
	} else {
		customer, cerr := s.customerFor(caller)
		if cerr != nil {
			return nil, cerr
		}
		order, err = s.orderRepo.GetByIDAndCustomer(orderID, customer.ID)
	}
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return buildOrderDetail(order), nil
}

// UpdatePaymentStatus 修改订单支付状态
func (s *OrderService) UpdatePaymentStatus(ctx context.Context, orderID uint, status string) (*OrderDetail, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if !slices.Contains(constants.PaymentStatuses, status) {
		return nil, ErrPaymentStatusInvalid
	}
	affected, err := s.orderRepo.UpdatePaymentStatus(orderID, status)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrOrderNotFound
	}
	logger.FromContext(ctx).Infow("order_payment_status_updated", "order_id", orderID, "payment_status", status)
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return buildOrderDetail(order), nil
}

func (s *OrderService) customerFor(caller Caller) (*models.Customer, error) {
	if caller.UserID == 0 {
		return nil, ErrUserRequired
	}
	return s.customerRepo.GetOrCreateByUserID(caller.UserID)
}

func buildOrderDetail(order *models.Order) *OrderDetail {
	detail := &OrderDetail{
		ID:            order.ID,
		CustomerID:    order.CustomerID,
		PlacedAt:      order.PlacedAt,
		PaymentStatus: order.PaymentStatus,
		Items:         make([]OrderItemDetail, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		line := OrderItemDetail{OrderItem: item, TotalPrice: item.UnitPrice.MulInt(item.Quantity)}
		detail.TotalPrice = detail.TotalPrice.Add(line.TotalPrice)
		detail.Items = append(detail.Items, line)
	}
	return detail
}
