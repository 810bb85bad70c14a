package shared

import (
	"github.com/storefront-api/internal/authz"
	"github.com/storefront-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Allows 查询当前调用方是否拥有操作权限，拒绝时不写响应；ok 为 false 时已返回错误。
func Allows(c *gin.Context, svc *authz.Service, operation, target string) (allow bool, ok bool) {
	uid, ok := GetUserID(c)
	if !ok {
		return false, false
	}
	caller := authz.Caller{UserID: uid, IsStaff: IsStaff(c)}
	allow, err := svc.Authorize(caller, operation, target)
	if err != nil {
		RespondError(c, response.CodeInternal, "error.authz_unavailable", err)
		return false, false
	}
	return allow, true
}

// Authorize 校验当前调用方能否执行操作，拒绝时直接返回 403。
func Authorize(c *gin.Context, svc *authz.Service, operation, target string) bool {
	allow, ok := Allows(c, svc, operation, target)
	if !ok {
		return false
	}
	if !allow {
		RequestLog(c).Warnw("authz_denied", "operation", operation, "target", target)
		RespondError(c, response.CodeForbidden, "error.forbidden", nil)
		return false
	}
	return true
}
