package public

import (
	"strconv"

	"github.com/storefront-api/internal/authz"
	handlershared "github.com/storefront-api/internal/http/handlers/shared"
	"github.com/storefront-api/internal/http/response"
	"github.com/storefront-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest 下单请求
type CheckoutRequest struct {
	CartID string `json:"cart_id" binding:"required"`
}

// Checkout 将购物车转换为订单
func (h *Handler) Checkout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	if !handlershared.Authorize(c, h.AuthzService, authz.OpOrderCreate, "") {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.OrderService.Checkout(c.Request.Context(), service.CheckoutInput{
		CartID: req.CartID,
		UserID: uid,
	})
	if err != nil {
		respondServiceError(c, err, "error.order_create_failed")
		return
	}
	response.Success(c, order)
}

// ListOrders 订单列表，拥有 order:list_all 的调用方可见全部订单
func (h *Handler) ListOrders(c *gin.Context) {
	caller, ok := h.orderCaller(c)
	if !ok {
		return
	}
	if !caller.SeeAll && !handlershared.Authorize(c, h.AuthzService, authz.OpOrderList, "") {
		return
	}
	orders, err := h.OrderService.List(caller)
	if err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.Success(c, orders)
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	caller, ok := h.orderCaller(c)
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if !caller.SeeAll && !handlershared.Authorize(c, h.AuthzService, authz.OpOrderGet, strconv.FormatUint(uint64(id), 10)) {
		return
	}
	order, err := h.OrderService.Get(caller, id)
	if err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.Success(c, order)
}

// orderCaller 构造订单查询身份，SeeAll 取决于 order:list_all 授权
func (h *Handler) orderCaller(c *gin.Context) (service.Caller, bool) {
	uid, ok := getUserID(c)
	if !ok {
		return service.Caller{}, false
	}
	seeAll, ok := handlershared.Allows(c, h.AuthzService, authz.OpOrderListAll, "")
	if !ok {
		return service.Caller{}, false
	}
	return service.Caller{UserID: uid, SeeAll: seeAll}, true
}
