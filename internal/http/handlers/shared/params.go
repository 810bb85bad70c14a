package shared

import (
	"strconv"
	"strings"

	"github.com/storefront-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ParseUintParam 解析路径中的正整数参数，失败时直接返回 400。
func ParseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		RespondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return 0, false
	}
	return uint(value), true
}
