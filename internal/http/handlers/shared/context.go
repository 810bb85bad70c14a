package shared

import (
	"github.com/storefront-api/internal/constants"
	"github.com/storefront-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetUserID 读取认证中间件写入的用户 ID，缺失时返回 401。
func GetUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.CtxKeyUserID)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return 0, false
	}
	id, ok := value.(uint)
	if !ok {
		RespondError(c, response.CodeInternal, "error.internal", nil)
		return 0, false
	}
	if id == 0 {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return 0, false
	}
	return id, true
}

// IsStaff 读取认证中间件写入的员工标记。
func IsStaff(c *gin.Context) bool {
	value, ok := c.Get(constants.CtxKeyIsStaff)
	if !ok {
		return false
	}
	staff, _ := value.(bool)
	return staff
}
