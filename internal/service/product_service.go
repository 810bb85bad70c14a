package service

import (
	"context"
	"errors"
	"strings"

	"github.com/storefront-api/internal/cache"
	"github.com/storefront-api/internal/constants"
	"github.com/storefront-api/internal/logger"
	"github.com/storefront-api/internal/models"
	"github.com/storefront-api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var defaultTaxRate = decimal.RequireFromString("1.18")

// ProductService 商品业务服务
type ProductService struct {
	db             *gorm.DB
	repo           repository.ProductRepository
	collectionRepo repository.CollectionRepository
	reviewRepo     repository.ReviewRepository
	cartRepo       repository.CartRepository
	catalogCache   *cache.CatalogCache
	taxRate        decimal.Decimal
}

// NewProductService 创建商品服务
func NewProductService(
	db *gorm.DB,
	repo repository.ProductRepository,
	collectionRepo repository.CollectionRepository,
	reviewRepo repository.ReviewRepository,
	cartRepo repository.CartRepository,
	catalogCache *cache.CatalogCache,
	taxRate string,
) *ProductService {
	rate, err := decimal.NewFromString(strings.TrimSpace(taxRate))
	if err != nil || !rate.IsPositive() {
		rate = defaultTaxRate
	}
	return &ProductService{
		db:             db,
		repo:           repo,
		collectionRepo: collectionRepo,
		reviewRepo:     reviewRepo,
		cartRepo:       cartRepo,
		catalogCache:   catalogCache,
		taxRate:        rate,
	}
}

// ProductDetail 前台商品视图
type ProductDetail struct {
	models.Product
	PriceWithTax models.Money `json:"price_with_tax"`
}

// AdminProductRow 后台商品列表行
type AdminProductRow struct {
	models.Product
	InventoryStatus string `json:"inventory_status"`
}

// CreateProductInput 创建商品输入
type CreateProductInput struct {
	CollectionID uint
	Title        string
	Slug         string
	Description  string
	UnitPrice    decimal.Decimal
	Inventory    int
}

// ProductQuery 前台商品查询条件
type ProductQuery struct {
	CollectionID uint
	LowInventory bool
}

func (s *ProductService) detail(product models.Product) ProductDetail {
	return ProductDetail{
		Product:      product,
		PriceWithTax: product.UnitPrice.MulRate(s.taxRate),
	}
}

// List 前台商品列表
func (s *ProductService) List(query ProductQuery) ([]ProductDetail, error) {
	filter := repository.ProductListFilter{CollectionID: query.CollectionID}
	if query.LowInventory {
		filter.InventoryBelow = constants.StorefrontInventoryLowThreshold
	}
	products, err := s.repo.List(filter)
	if err != nil {
		return nil, err
	}
	details := make([]ProductDetail, 0, len(products))
	for _, product := range products {
		details = append(details, s.detail(product))
	}
	return details, nil
}

// Get 前台商品详情
func (s *ProductService) Get(id uint) (*ProductDetail, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	detail := s.detail(*product)
	return &detail, nil
}

// ListAdmin 后台商品列表，附带库存状态
func (s *ProductService) ListAdmin() ([]AdminProductRow, error) {
	products, err := s.repo.List(repository.ProductListFilter{WithCollection: true})
	if err != nil {
		return nil, err
	}
	rows := make([]AdminProductRow, 0, len(products))
	for _, product := range products {
		rows = append(rows, AdminProductRow{
			Product:         product,
			InventoryStatus: AdminInventoryStatus(product.Inventory),
		})
	}
	return rows, nil
}

// Create 创建商品
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*ProductDetail, error) {
	title := strings.TrimSpace(input.Title)
	slug := strings.TrimSpace(input.Slug)
	if title == "" || slug == "" || input.Inventory < 0 {
		return nil, ErrProductInvalid
	}
	if !input.UnitPrice.IsPositive() {
		return nil, ErrProductPriceInvalid
	}
	collection, err := s.collectionRepo.GetByID(input.CollectionID)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, ErrCollectionNotFound
	}
	count, err := s.repo.CountBySlug(slug)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrProductSlugExists
	}

	product := models.Product{
		CollectionID: input.CollectionID,
		Title:        title,
		Slug:         slug,
		Description:  strings.TrimSpace(input.Description),
		UnitPrice:    models.NewMoneyFromDecimal(input.UnitPrice),
		Inventory:    input.Inventory,
	}
	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	detail := s.detail(product)
	return &detail, nil
}

// UpdatePrice 修改单价，不影响已下单的价格快照
func (s *ProductService) UpdatePrice(id uint, price decimal.Decimal) (*ProductDetail, error) {
	if !price.IsPositive() {
		return nil, ErrProductPriceInvalid
	}
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if err := s.repo.UpdatePrice(id, models.NewMoneyFromDecimal(price)); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// ClearInventory 批量清空库存，返回更新数量
func (s *ProductService) ClearInventory(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrInventoryIDsRequired
	}
	updated, err := s.repo.ClearInventory(ids)
	if err != nil {
		return 0, err
	}
	logger.Infow("product_inventory_cleared", "product_ids", ids, "updated", updated)
	return updated, nil
}

// Delete 删除商品：存在订单项引用时拒绝，否则连同评价、购物车项一起删除
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		productRepo := s.repo.WithTx(tx)
		product, err := productRepo.LockByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}
		referenced, err := productRepo.CountOrderItems(id)
		if err != nil {
			return err
		}
		if referenced > 0 {
			return ErrProductInUse
		}
		if err := s.reviewRepo.WithTx(tx).DeleteByProduct(id); err != nil {
			return err
		}
		if err := s.cartRepo.WithTx(tx).DeleteItemsByProduct(id); err != nil {
			return err
		}
		return productRepo.Delete(id)
	})
	if err != nil {
		if errors.Is(err, ErrProductNotFound) || errors.Is(err, ErrProductInUse) {
			return err
		}
		logger.FromContext(ctx).Errorw("product_delete_failed", "product_id", id, "error", err)
		return ErrProductDeleteFailed
	}
	s.invalidateCatalog(ctx)
	return nil
}

func (s *ProductService) invalidateCatalog(ctx context.Context) {
	if err := s.catalogCache.InvalidateCollections(ctx); err != nil {
		logger.FromContext(ctx).Warnw("catalog_cache_invalidate_failed", "error", err)
	}
}
