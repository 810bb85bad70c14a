package public

import (
	"time"

	"github.com/storefront-api/internal/authz"
	handlershared "github.com/storefront-api/internal/http/handlers/shared"
	"github.com/storefront-api/internal/http/response"
	"github.com/storefront-api/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateProfileRequest 更新顾客资料请求
type UpdateProfileRequest struct {
	Phone      *string `json:"phone"`
	BirthDate  *string `json:"birth_date"`
	Membership *string `json:"membership"`
}

// GetMe 当前用户的顾客资料
func (h *Handler) GetMe(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	if !handlershared.Authorize(c, h.AuthzService, authz.OpCustomerProfile, "") {
		return
	}
	profile, err := h.CustomerService.Me(uid)
	if err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.Success(c, profile)
}

// UpdateMe 更新当前用户的顾客资料
func (h *Handler) UpdateMe(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	if !handlershared.Authorize(c, h.AuthzService, authz.OpCustomerProfile, "") {
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	input := service.UpdateProfileInput{Phone: req.Phone, Membership: req.Membership}
	if req.BirthDate != nil {
		birthDate, err := time.Parse(service.BirthDateLayout, *req.BirthDate)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return
		}
		input.BirthDate = &birthDate
	}
	profile, err := h.CustomerService.UpdateMe(uid, input)
	if err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.Success(c, profile)
}
