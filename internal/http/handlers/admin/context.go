package admin

import (
	"strconv"

	handlershared "github.com/storefront-api/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	return handlershared.ParseUintParam(c, name)
}

func (h *Handler) authorize(c *gin.Context, operation string, target uint) bool {
	id := ""
	if target > 0 {
		id = strconv.FormatUint(uint64(target), 10)
	}
	return handlershared.Authorize(c, h.AuthzService, operation, id)
}
