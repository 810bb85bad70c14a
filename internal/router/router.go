package router

import (
	"fmt"
	"strings"

	"github.com/storefront-api/internal/config"
	adminhandlers "github.com/storefront-api/internal/http/handlers/admin"
	publichandlers "github.com/storefront-api/internal/http/handlers/public"
	"github.com/storefront-api/internal/http/response"
	"github.com/storefront-api/internal/logger"
	"github.com/storefront-api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "store"
	}
	redisClient := c.Cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.login_rate_limited",
	}
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.CheckoutRateLimit.BlockSeconds,
		MessageKey:    "error.checkout_rate_limited",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(logger.Z()))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", func(ctx *gin.Context) {
		response.Success(ctx, gin.H{"status": "ok"})
	})

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 商品目录
		apiV1.GET("/collections", publicHandler.ListCollections)
		apiV1.GET("/products", publicHandler.ListProducts)
		apiV1.GET("/products/:id", publicHandler.GetProduct)
		apiV1.GET("/products/:id/reviews", publicHandler.ListReviews)
		apiV1.POST("/products/:id/reviews", publicHandler.CreateReview)

		// 匿名购物车
		carts := apiV1.Group("/carts")
		{
			carts.POST("", publicHandler.CreateCart)
			carts.GET("/:cart_id", publicHandler.GetCart)
			carts.DELETE("/:cart_id", publicHandler.DeleteCart)
			carts.GET("/:cart_id/items", publicHandler.ListCartItems)
			carts.POST("/:cart_id/items", publicHandler.AddCartItem)
			carts.PATCH("/:cart_id/items/:item_id", publicHandler.UpdateCartItem)
			carts.DELETE("/:cart_id/items/:item_id", publicHandler.RemoveCartItem)
		}

		// 用户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
		}

		// 用户接口（需鉴权）
		user := apiV1.Group("")
		user.Use(JWTAuthMiddleware(c.AuthService, c.UserRepo))
		{
			user.GET("/me", publicHandler.GetMe)
			user.PUT("/me", publicHandler.UpdateMe)
			user.POST("/orders", RateLimitMiddleware(redisClient, checkoutRule, KeyByUserID), publicHandler.Checkout)
			user.GET("/orders", publicHandler.ListOrders)
			user.GET("/orders/:id", publicHandler.GetOrder)
		}

		// 管理员接口
		admin := apiV1.Group("/admin")
		admin.Use(JWTAuthMiddleware(c.AuthService, c.UserRepo), AdminAccessMiddleware(c.AuthzService))
		{
			admin.POST("/collections", adminHandler.CreateCollection)
			admin.DELETE("/collections/:id", adminHandler.DeleteCollection)

			admin.GET("/products/inventory", adminHandler.ListInventory)
			admin.POST("/products", adminHandler.CreateProduct)
			admin.POST("/products/clear-inventory", adminHandler.ClearInventory)
			admin.PATCH("/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)

			admin.GET("/customers", adminHandler.ListCustomers)
			admin.GET("/customers/:id/history", adminHandler.GetCustomerHistory)

			admin.PATCH("/orders/:id", adminHandler.UpdateOrderPaymentStatus)

			admin.GET("/authz/roles/:role/policies", adminHandler.GetRolePolicies)
			admin.POST("/authz/roles/:role/policies", adminHandler.GrantRolePolicy)
			admin.DELETE("/authz/roles/:role/policies", adminHandler.RevokeRolePolicy)
			admin.GET("/authz/users/:id/roles", adminHandler.GetUserRoles)
			admin.PUT("/authz/users/:id/roles", adminHandler.SetUserRoles)
		}
	}

	return r
}
