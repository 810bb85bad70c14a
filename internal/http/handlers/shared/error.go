package shared

import (
	"github.com/storefront-api/internal/http/response"
	"github.com/storefront-api/internal/i18n"
	"github.com/storefront-api/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil || c.Request == nil {
		return logger.S()
	}
	return logger.FromContext(c.Request.Context())
}

// RespondError 按请求语言返回错误信封，err 非空时记录原始错误。
func RespondError(c *gin.Context, code int, key string, err error) {
	msg := i18n.T(i18n.ResolveLocale(c), key)
	if err != nil {
		log := RequestLog(c)
		if code >= response.CodeInternal {
			log.Errorw("handler_error", "code", code, "message_key", key, "path", c.FullPath(), "error", err)
		} else {
			log.Debugw("handler_rejected", "code", code, "message_key", key, "path", c.FullPath(), "error", err)
		}
	}
	response.Error(c, code, msg)
}
