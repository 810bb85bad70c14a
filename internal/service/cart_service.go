package service

import (
	"context"
	"time"

	"github.com/storefront-api/internal/logger"
	"github.com/storefront-api/internal/models"
	"github.com/storefront-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItemDetail 购物车项详情，total_price 按商品当前价格实时计算
type CartItemDetail struct {
	ID         uint            `json:"id"`
	Product    *models.Product `json:"product"`
	Quantity   int             `json:"quantity"`
	TotalPrice models.Money    `json:"total_price"`
}

// CartDetail 购物车详情
type CartDetail struct {
	ID             string           `json:"id"`
	CreatedAt      time.Time        `json:"created_at"`
	Items          []CartItemDetail `json:"items"`
	TotalCartValue models.Money     `json:"total_cart_value"`
}

// CartService 购物车服务
type CartService struct {
	db          *gorm.DB
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(db *gorm.DB, cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		db:          db,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// ParseCartID 校验并规范化购物车 ID
func ParseCartID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", ErrCartIDInvalid
	}
	return id.String(), nil
}

// Create 创建空购物车
func (s *CartService) Create(ctx context.Context) (*CartDetail, error) {
	cart := models.Cart{ID: uuid.NewString()}
	if err := s.cartRepo.Create(&cart); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debugw("cart_created", "cart_id", cart.ID)
	return buildCartDetail(&cart), nil
}

// Get 获取购物车详情
func (s *CartService) Get(rawID string) (*CartDetail, error) {
	cartID, err := ParseCartID(rawID)
	if err != nil {
		return nil, err
	}
	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	return buildCartDetail(cart), nil
}

// Delete 删除购物车及其购物车项
func (s *CartService) Delete(ctx context.Context, rawID string) error {
	cartID, err := ParseCartID(rawID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		cart, err := cartRepo.LockByID(cartID)
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrCartNotFound
		}
		return cartRepo.Delete(cartID)
	})
}

// ListItems 获取购物车项
func (s *CartService) ListItems(rawID string) ([]CartItemDetail, error) {
	detail, err := s.Get(rawID)
	if err != nil {
		return nil, err
	}
	return detail.Items, nil
}

// AddItem 向购物车添加商品：同一商品已存在时累加数量，否则新建购物车项。
// 校验与合并在同一事务内完成。
func (s *CartService) AddItem(ctx context.Context, rawID string, productID uint, quantity int) (*CartItemDetail, error) {
	if quantity < 1 {
		return nil, ErrCartItemQuantityInvalid
	}
	cartID, err := ParseCartID(rawID)
	if err != nil {
		return nil, err
	}

	var merged *models.CartItem
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		cart, err := cartRepo.LockByID(cartID)
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrCartNotFound
		}
		product, err := s.productRepo.WithTx(tx).GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}
		merged, err = cartRepo.MergeItem(cartID, productID, quantity)
		return err
	})
	if err != nil {
		return nil, err
	}
	item := buildCartItemDetail(*merged)
	return &item, nil
}

// UpdateItemQuantity 修改购物车项数量
func (s *CartService) UpdateItemQuantity(rawID string, itemID uint, quantity int) (*CartItemDetail, error) {
	if quantity < 1 {
		return nil, ErrCartItemQuantityInvalid
	}
	cartID, err := ParseCartID(rawID)
	if err != nil {
		return nil, err
	}
	affected, err := s.cartRepo.UpdateItemQuantity(cartID, itemID, quantity)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrCartItemNotFound
	}
	item, err := s.cartRepo.GetItem(cartID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	detail := buildCartItemDetail(*item)
	return &detail, nil
}

// RemoveItem 删除购物车项
func (s *CartService) RemoveItem(rawID string, itemID uint) error {
	cartID, err := ParseCartID(rawID)
	if err != nil {
		return err
	}
	affected, err := s.cartRepo.DeleteItem(cartID, itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func buildCartItemDetail(item models.CartItem) CartItemDetail {
	detail := CartItemDetail{
		ID:       item.ID,
		Product:  item.Product,
		Quantity: item.Quantity,
	}
	if item.Product != nil {
		detail.TotalPrice = item.Product.UnitPrice.MulInt(item.Quantity)
	}
	return detail
}

func buildCartDetail(cart *models.Cart) *CartDetail {
	detail := &CartDetail{
		ID:        cart.ID,
		CreatedAt: cart.CreatedAt,
		Items:     make([]CartItemDetail, 0, len(cart.Items)),
	}
	for _, item := range cart.Items {
		line := buildCartItemDetail(item)
		detail.TotalCartValue = detail.TotalCartValue.Add(line.TotalPrice)
		detail.Items = append(detail.Items, line)
	}
	return detail
}
