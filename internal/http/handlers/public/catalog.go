package public

import (
	"strconv"
	"strings"

	"github.com/storefront-api/internal/http/response"
	"github.com/storefront-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateReviewRequest 创建评价请求
type CreateReviewRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// ListCollections 集合列表（含 products_count）
func (h *Handler) ListCollections(c *gin.Context) {
	rows, err := h.CollectionService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.Success(c, rows)
}

// ListProducts 商品列表，支持 collection_id 与 low_inventory 过滤
func (h *Handler) ListProducts(c *gin.Context) {
	var query service.ProductQuery
	if raw := strings.TrimSpace(c.Query("collection_id")); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return
		}
		query.CollectionID = uint(id)
	}
	if raw := strings.TrimSpace(c.Query("low_inventory")); raw != "" {
		low, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return
		}
		query.LowInventory = low
	}

	products, err := h.ProductService.List(query)
	if err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.Success(c, products)
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.Get(id)
	if err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.Success(c, product)
}

// ListReviews 商品评价列表
func (h *Handler) ListReviews(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	reviews, err := h.ReviewService.ListByProduct(id)
	if err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.Success(c, reviews)
}

// CreateReview 创建商品评价
func (h *Handler) CreateReview(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	review, err := h.ReviewService.Create(id, req.Name, req.Description)
	if err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.Success(c, review)
}
