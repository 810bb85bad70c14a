package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/storefront-api/internal/cache"
	"github.com/storefront-api/internal/config"
	"github.com/storefront-api/internal/models"
	"github.com/storefront-api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type testEnv struct {
	db          *gorm.DB
	cfg         *config.Config
	collections *CollectionService
	products    *ProductService
	reviews     *ReviewService
	carts       *CartService
	orders      *OrderService
	customers   *CustomerService
	auth        *AuthService
}

func newTestEnv(t *testing.T, catalogCache *cache.CatalogCache) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateWith(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key-for-storefront-unit-tests"
	cfg.JWT.ExpireHours = 1
	cfg.JWT.Issuer = "storefront-test"
	cfg.Security.PasswordMinLength = 8

	collectionRepo := repository.NewCollectionRepository(db)
	productRepo := repository.NewProductRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	cartRepo := repository.NewCartRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	return &testEnv{
		db:          db,
		cfg:         cfg,
		collections: NewCollectionService(db, collectionRepo, catalogCache),
		products:    NewProductService(db, productRepo, collectionRepo, reviewRepo, cartRepo, catalogCache, "1.18"),
		reviews:     NewReviewService(reviewRepo, productRepo),
		carts:       NewCartService(db, cartRepo, productRepo),
		orders:      NewOrderService(db, orderRepo, cartRepo, customerRepo),
		customers:   NewCustomerService(customerRepo, orderRepo),
		auth:        NewAuthService(cfg, userRepo),
	}
}

func (e *testEnv) seedUser(t *testing.T, email string, staff bool) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "x", IsStaff: staff}
	if err := e.db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func (e *testEnv) seedProduct(t *testing.T, slug, price string, inventory int) *models.Product {
	t.Helper()
	var collection models.Collection
	if err := e.db.FirstOrCreate(&collection, models.Collection{Title: "Default"}).Error; err != nil {
		t.Fatalf("create collection failed: %v", err)
	}
	product := &models.Product{
		CollectionID: collection.ID,
		Title:        slug,
		Slug:         slug,
		UnitPrice:    models.NewMoneyFromDecimal(decimal.RequireFromString(price)),
		Inventory:    inventory,
	}
	if err := e.db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func (e *testEnv) countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := e.db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count rows failed: %v", err)
	}
	return count
}
