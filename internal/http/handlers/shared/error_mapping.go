package shared

import (
	"errors"

	"github.com/storefront-api/internal/http/response"
	"github.com/storefront-api/internal/service"

	"github.com/gin-gonic/gin"
)

// MappedError 定义业务错误到接口错误响应的映射关系。
type MappedError struct {
	Target error
	Code   int
	Key    string
}

// DomainErrorRules 业务错误映射表，按顺序匹配
var DomainErrorRules = []MappedError{
	{Target: service.ErrCollectionNotFound, Code: response.CodeNotFound, Key: "error.collection_not_found"},
	{Target: service.ErrCollectionInUse, Code: response.CodeConflict, Key: "error.collection_in_use"},
	{Target: service.ErrCollectionTitleEmpty, Code: response.CodeBadRequest, Key: "error.collection_title_required"},
	{Target: service.ErrProductNotFound, Code: response.CodeNotFound, Key: "error.product_not_found"},
	{Target: service.ErrProductInUse, Code: response.CodeMethodNotAllowed, Key: "error.product_in_use"},
	{Target: service.ErrProductSlugExists, Code: response.CodeConflict, Key: "error.product_slug_exists"},
	{Target: service.ErrProductInvalid, Code: response.CodeBadRequest, Key: "error.product_invalid"},
	{Target: service.ErrProductPriceInvalid, Code: response.CodeBadRequest, Key: "error.product_price_invalid"},
	{Target: service.ErrInventoryIDsRequired, Code: response.CodeBadRequest, Key: "error.inventory_ids_required"},
	{Target: service.ErrReviewInvalid, Code: response.CodeBadRequest, Key: "error.review_invalid"},
	{Target: service.ErrCartNotFound, Code: response.CodeNotFound, Key: "error.cart_not_found"},
	{Target: service.ErrCartIDInvalid, Code: response.CodeBadRequest, Key: "error.cart_id_invalid"},
	{Target: service.ErrCartItemNotFound, Code: response.CodeNotFound, Key: "error.cart_item_not_found"},
	{Target: service.ErrCartItemQuantityInvalid, Code: response.CodeBadRequest, Key: "error.cart_item_quantity_invalid"},
	{Target: service.ErrCartEmpty, Code: response.CodeConflict, Key: "error.cart_empty"},
	{Target: service.ErrOrderNotFound, Code: response.CodeNotFound, Key: "error.order_not_found"},
	{Target: service.ErrPaymentStatusInvalid, Code: response.CodeBadRequest, Key: "error.payment_status_invalid"},
	{Target: service.ErrCustomerNotFound, Code: response.CodeNotFound, Key: "error.customer_not_found"},
	{Target: service.ErrMembershipInvalid, Code: response.CodeBadRequest, Key: "error.membership_invalid"},
	{Target: service.ErrUserRequired, Code: response.CodeUnauthorized, Key: "error.unauthorized"},
	{Target: service.ErrInvalidCredentials, Code: response.CodeUnauthorized, Key: "error.invalid_credentials"},
	{Target: service.ErrEmailExists, Code: response.CodeConflict, Key: "error.email_exists"},
	{Target: service.ErrEmailInvalid, Code: response.CodeBadRequest, Key: "error.email_invalid"},
	{Target: service.ErrPasswordTooShort, Code: response.CodeBadRequest, Key: "error.password_too_short"},
	{Target: service.ErrTokenInvalid, Code: response.CodeUnauthorized, Key: "error.token_invalid"},
	{Target: service.ErrOrderCreateFailed, Code: response.CodeInternal, Key: "error.order_create_failed"},
	{Target: service.ErrProductDeleteFailed, Code: response.CodeInternal, Key: "error.product_delete_failed"},
}

var kindErrorRules = []MappedError{
	{Target: service.ErrNotFound, Code: response.CodeNotFound, Key: "error.not_found"},
	{Target: service.ErrConflict, Code: response.CodeConflict, Key: "error.bad_request"},
	{Target: service.ErrInvalid, Code: response.CodeBadRequest, Key: "error.bad_request"},
}

// RespondMappedError 按映射表返回错误，未命中时记录原始错误并返回兜底响应。
func RespondMappedError(c *gin.Context, err error, fallbackKey string) {
	for _, rules := range [][]MappedError{DomainErrorRules, kindErrorRules} {
		for _, rule := range rules {
			if errors.Is(err, rule.Target) {
				RespondError(c, rule.Code, rule.Key, nil)
				return
			}
		}
	}
	if fallbackKey == "" {
		fallbackKey = "error.internal"
	}
	RespondError(c, response.CodeInternal, fallbackKey, err)
}
