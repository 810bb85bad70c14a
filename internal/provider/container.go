package provider

import (
	"context"
	"time"

	"github.com/storefront-api/internal/authz"
	"github.com/storefront-api/internal/cache"
	"github.com/storefront-api/internal/config"
	"github.com/storefront-api/internal/logger"
	"github.com/storefront-api/internal/models"
	"github.com/storefront-api/internal/repository"
	"github.com/storefront-api/internal/service"

	"gorm.io/gorm"
)

const redisPingTimeout = 3 * time.Second

// Container 依赖注入容器
type Container struct {
	Config *config.Config
	DB     *gorm.DB
	Cache  *cache.Store

	// Repositories
	UserRepo       repository.UserRepository
	CustomerRepo   repository.CustomerRepository
	CollectionRepo repository.CollectionRepository
	ProductRepo    repository.ProductRepository
	ReviewRepo     repository.ReviewRepository
	CartRepo       repository.CartRepository
	OrderRepo      repository.OrderRepository

	// Services
	AuthzService      *authz.Service
	AuthService       *service.AuthService
	CollectionService *service.CollectionService
	ProductService    *service.ProductService
	ReviewService     *service.ReviewService
	CartService       *service.CartService
	OrderService      *service.OrderService
	CustomerService   *service.CustomerService
}

// NewContainer 使用全局数据库初始化容器
func NewContainer(cfg *config.Config) *Container {
	store := cache.NewStore(&cfg.Redis)
	if store.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		defer cancel()
		if err := store.Client().Ping(ctx).Err(); err != nil {
			logger.Warnw("provider_init_redis_failed", "error", err)
			_ = store.Close()
			store = nil
		}
	}

	c, err := NewContainerWith(cfg, models.DB, store)
	if err != nil {
		logger.Errorw("provider_init_failed", "error", err)
		panic(err)
	}
	return c
}

// NewContainerWith 使用给定的数据库与缓存初始化容器
func NewContainerWith(cfg *config.Config, db *gorm.DB, store *cache.Store) (*Container, error) {
	c := &Container{
		Config: cfg,
		DB:     db,
		Cache:  store,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	if err := c.initServices(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) initRepositories() {
	db := c.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.CustomerRepo = repository.NewCustomerRepository(db)
	c.CollectionRepo = repository.NewCollectionRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() error {
	authzService, err := authz.NewService(c.DB)
	if err != nil {
		return err
	}
	if err := authzService.BootstrapBuiltinRoles(); err != nil {
		return err
	}
	c.AuthzService = authzService

	catalogCache := cache.NewCatalogCache(c.Cache, time.Duration(c.Config.Redis.CatalogTTLSeconds)*time.Second)

	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
	c.CollectionService = service.NewCollectionService(c.DB, c.CollectionRepo, catalogCache)
	c.ProductService = service.NewProductService(c.DB, c.ProductRepo, c.CollectionRepo, c.ReviewRepo, c.CartRepo, catalogCache, c.Config.Catalog.TaxRate)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.ProductRepo)
	c.CartService = service.NewCartService(c.DB, c.CartRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.DB, c.OrderRepo, c.CartRepo, c.CustomerRepo)
	c.CustomerService = service.NewCustomerService(c.CustomerRepo, c.OrderRepo)
	return nil
}
