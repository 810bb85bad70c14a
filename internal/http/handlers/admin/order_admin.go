package admin

import (
	"github.com/storefront-api/internal/authz"
	"github.com/storefront-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// UpdatePaymentStatusRequest 修改支付状态请求
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// UpdateOrderPaymentStatus 修改订单支付状态
func (h *Handler) UpdateOrderPaymentStatus(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if !h.authorize(c, authz.OpOrderUpdatePayment, id) {
		return
	}
	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	order, err := h.OrderService.UpdatePaymentStatus(c.Request.Context(), id, req.PaymentStatus)
	if err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	requestLog(c).Infow("admin_order_payment_status_updated", "order_id", id, "payment_status", order.PaymentStatus)
	response.Success(c, order)
}
