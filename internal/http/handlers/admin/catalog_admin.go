package admin

import (
	"github.com/storefront-api/internal/authz"
	"github.com/storefront-api/internal/http/response"
	"github.com/storefront-api/internal/i18n"
	"github.com/storefront-api/internal/models"
	"github.com/storefront-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateCollectionRequest 创建集合请求
type CreateCollectionRequest struct {
	Title string `json:"title" binding:"required"`
}

// CreateProductRequest 创建商品请求
type CreateProductRequest struct {
	CollectionID uint         `json:"collection_id" binding:"required"`
	Title        string       `json:"title" binding:"required"`
	Slug         string       `json:"slug" binding:"required"`
	Description  string       `json:"description"`
	UnitPrice    models.Money `json:"unit_price"`
	Inventory    int          `json:"inventory"`
}

// UpdateProductRequest 修改商品单价请求
type UpdateProductRequest struct {
	UnitPrice models.Money `json:"unit_price"`
}

// ClearInventoryRequest 批量清空库存请求
type ClearInventoryRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}

// CreateCollection 创建集合
func (h *Handler) CreateCollection(c *gin.Context) {
	if !h.authorize(c, authz.OpCollectionCreate, 0) {
		return
	}
	var req CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	collection, err := h.CollectionService.Create(c.Request.Context(), req.Title)
	if err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.Success(c, collection)
}

// DeleteCollection 删除集合
func (h *Handler) DeleteCollection(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if !h.authorize(c, authz.OpCollectionDelete, id) {
		return
	}
	if err := h.CollectionService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), "success.deleted"), nil)
}

// ListInventory 后台商品列表（含库存状态）
func (h *Handler) ListInventory(c *gin.Context) {
	if !h.authorize(c, authz.OpProductInventory, 0) {
		return
	}
	rows, err := h.ProductService.ListAdmin()
	if err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.Success(c, rows)
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	if !h.authorize(c, authz.OpProductCreate, 0) {
		return
	}
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	product, err := h.ProductService.Create(c.Request.Context(), service.CreateProductInput{
		CollectionID: req.CollectionID,
		Title:        req.Title,
		Slug:         req.Slug,
		Description:  req.Description,
		UnitPrice:    req.UnitPrice.Decimal,
		Inventory:    req.Inventory,
	})
	if err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.Success(c, product)
}

// UpdateProduct 修改商品单价
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if !h.authorize(c, authz.OpProductUpdate, id) {
		return
	}
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	product, err := h.ProductService.UpdatePrice(id, req.UnitPrice.Decimal)
	if err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.Success(c, product)
}

// DeleteProduct 删除商品，被订单项引用时拒绝
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if !h.authorize(c, authz.OpProductDelete, id) {
		return
	}
	if err := h.ProductService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "error.product_delete_failed")
		return
	}
	requestLog(c).Infow("admin_product_deleted", "product_id", id)
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), "success.deleted"), nil)
}

// ClearInventory 批量清空库存
func (h *Handler) ClearInventory(c *gin.Context) {
	if !h.authorize(c, authz.OpProductClearInventory, 0) {
		return
	}
	var req ClearInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	updated, err := h.ProductService.ClearInventory(req.IDs)
	if err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.Success(c, gin.H{"updated": updated})
}
