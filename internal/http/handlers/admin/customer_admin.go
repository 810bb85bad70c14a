package admin

import (
	"github.com/storefront-api/internal/authz"
	"github.com/storefront-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListCustomers 顾客列表（含 orders_count）
func (h *Handler) ListCustomers(c *gin.Context) {
	if !h.authorize(c, authz.OpCustomerList, 0) {
		return
	}
	rows, err := h.CustomerService.List()
	if err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.Success(c, rows)
}

// GetCustomerHistory 顾客历史订单
func (h *Handler) GetCustomerHistory(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if !h.authorize(c, authz.OpCustomerHistory, id) {
		return
	}
	history, err := h.CustomerService.History(id)
	if err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.Success(c, history)
}
