package router

import (
	"strings"
	"time"

	"github.com/storefront-api/internal/authz"
	"github.com/storefront-api/internal/config"
	"github.com/storefront-api/internal/constants"
	"github.com/storefront-api/internal/http/response"
	"github.com/storefront-api/internal/i18n"
	"github.com/storefront-api/internal/logger"
	"github.com/storefront-api/internal/repository"
	"github.com/storefront-api/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// CORSMiddleware 跨域中间件，配置 "*" 时放行任意来源
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowedMethods := cfg.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	allowedHeaders := cfg.AllowedHeaders
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{"Content-Type", "Authorization", "X-Requested-With", requestIDHeader}
	}
	allowedOrigins := cfg.AllowedOrigins
	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return originAllowed(origin, allowedOrigins)
		},
		AllowMethods:     allowedMethods,
		AllowHeaders:     allowedHeaders,
		ExposeHeaders:    []string{requestIDHeader},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           time.Duration(cfg.MaxAge) * time.Second,
	})
}

// originAllowed 未配置来源时等同于 "*"
func originAllowed(origin string, allowedOrigins []string) bool {
	if len(allowedOrigins) == 0 {
		return true
	}
	for _, allowed := range allowedOrigins {
		allowed = strings.TrimSpace(allowed)
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

// RequestIDMiddleware 请求 ID 中间件，同时把 request_id 绑定到请求 context 的日志上
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(constants.CtxKeyRequestID, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), "request_id", requestID))
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志中间件
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	sugar := logger.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := sugar.With(
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if len(c.Errors) > 0 {
			log.Errorw("request", "errors", c.Errors.String())
			return
		}
		log.Infow("request")
	}
}

func getRequestID(c *gin.Context) string {
	value, ok := c.Get(constants.CtxKeyRequestID)
	if !ok {
		return ""
	}
	if requestID, ok := value.(string); ok {
		return requestID
	}
	return ""
}

// JWTAuthMiddleware 用户 JWT 鉴权中间件，写入 user_id 与 is_staff
func JWTAuthMiddleware(authService *service.AuthService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authService == nil || userRepo == nil {
			abortUnauthorized(c, "error.token_invalid")
			return
		}
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "error.unauthorized")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			abortUnauthorized(c, "error.unauthorized")
			return
		}

		claims, err := authService.ParseJWT(strings.TrimSpace(parts[1]))
		if err != nil || claims.UserID == 0 {
			abortUnauthorized(c, "error.token_invalid")
			return
		}

		user, err := userRepo.GetByID(claims.UserID)
		if err != nil || user == nil {
			abortUnauthorized(c, "error.token_invalid")
			return
		}

		c.Set(constants.CtxKeyUserID, user.ID)
		c.Set(constants.CtxKeyIsStaff, user.IsStaff)
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), "user_id", user.ID))
		c.Next()
	}
}

// AdminAccessMiddleware 管理端入口校验：员工或被授予附加角色的用户可进入，具体操作由处理器授权
func AdminAccessMiddleware(authzService *authz.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if staff, ok := c.Get(constants.CtxKeyIsStaff); ok {
			if isStaff, typeOK := staff.(bool); typeOK && isStaff {
				c.Next()
				return
			}
		}
		if authzService == nil {
			logger.Errorw("admin_access_authz_unavailable")
			abortForbidden(c)
			return
		}

		var userID uint
		if value, ok := c.Get(constants.CtxKeyUserID); ok {
			userID, _ = value.(uint)
		}
		if userID == 0 {
			abortUnauthorized(c, "error.unauthorized")
			return
		}

		roles, err := authzService.GetUserRoles(userID)
		if err != nil {
			logger.FromContext(c.Request.Context()).Errorw("admin_access_roles_failed", "error", err)
			abortForbidden(c)
			return
		}
		if len(roles) == 0 {
			logger.FromContext(c.Request.Context()).Warnw("admin_access_denied",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)
			abortForbidden(c)
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, key string) {
	response.Unauthorized(c, i18n.T(i18n.ResolveLocale(c), key))
	c.Abort()
}

func abortForbidden(c *gin.Context) {
	response.Forbidden(c, i18n.T(i18n.ResolveLocale(c), "error.forbidden"))
	c.Abort()
}
