package public

import (
	"github.com/storefront-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 添加购物车项请求
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// UpdateCartItemRequest 修改购物车项数量请求
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// CreateCart 创建匿名购物车
func (h *Handler) CreateCart(c *gin.Context) {
	cart, err := h.CartService.Create(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.Success(c, cart)
}

// GetCart 获取购物车（实时价格与合计）
func (h *Handler) GetCart(c *gin.Context) {
	cart, err := h.CartService.Get(c.Param("cart_id"))
	if err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.Success(c, cart)
}

// DeleteCart 删除购物车
func (h *Handler) DeleteCart(c *gin.Context) {
	if err := h.CartService.Delete(c.Request.Context(), c.Param("cart_id")); err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.Success(c, nil)
}

// ListCartItems 购物车项列表
func (h *Handler) ListCartItems(c *gin.Context) {
	items, err := h.CartService.ListItems(c.Param("cart_id"))
	if err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.Success(c, items)
}

// AddCartItem 添加商品，已存在时累加数量
func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	item, err := h.CartService.AddItem(c.Request.Context(), c.Param("cart_id"), req.ProductID, req.Quantity)
	if err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.Success(c, item)
}

// UpdateCartItem 修改购物车项数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	itemID, ok := parseUintParam(c, "item_id")
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	item, err := h.CartService.UpdateItemQuantity(c.Param("cart_id"), itemID, req.Quantity)
	if err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.Success(c, item)
}

// RemoveCartItem 删除购物车项
func (h *Handler) RemoveCartItem(c *gin.Context) {
	itemID, ok := parseUintParam(c, "item_id")
	if !ok {
		return
	}
	if err := h.CartService.RemoveItem(c.Param("cart_id"), itemID); err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.Success(c, nil)
}
