package service

import "errors"

// 错误分类，具体错误通过 errors.Is 归入其中之一
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInvalid  = errors.New("invalid")
)

type domainError struct {
	kind error
	msg  string
}

func (e *domainError) Error() string { return e.msg }

func (e *domainError) Unwrap() error { return e.kind }

func newError(kind error, msg string) error {
	return &domainError{kind: kind, msg: msg}
}

// 商品目录
var (
	ErrCollectionNotFound   = newError(ErrNotFound, "collection not found")
	ErrCollectionInUse      = newError(ErrConflict, "collection has products")
	ErrCollectionTitleEmpty = newError(ErrInvalid, "collection title is required")
	ErrProductNotFound      = newError(ErrNotFound, "product not found")
	ErrProductInUse         = newError(ErrConflict, "Product can not be deleted, because it is associated with one or more order items.")
	ErrProductSlugExists    = newError(ErrConflict, "product slug already exists")
	ErrProductInvalid       = newError(ErrInvalid, "product fields are invalid")
	ErrProductPriceInvalid  = newError(ErrInvalid, "unit price must be positive")
	ErrReviewInvalid        = newError(ErrInvalid, "review name and description are required")
	ErrInventoryIDsRequired = newError(ErrInvalid, "product ids are required")
	ErrProductDeleteFailed  = errors.New("product delete failed")
)

// 购物车
var (
	ErrCartNotFound            = newError(ErrNotFound, "cart not found")
	ErrCartIDInvalid           = newError(ErrInvalid, "cart id is malformed")
	ErrCartItemNotFound        = newError(ErrNotFound, "cart item not found")
	ErrCartItemQuantityInvalid = newError(ErrInvalid, "quantity must be at least 1")
	ErrCartEmpty               = newError(ErrConflict, "the cart is empty")
)

// 订单与顾客
var (
	ErrOrderNotFound        = newError(ErrNotFound, "order not found")
	ErrOrderCreateFailed    = errors.New("order create failed")
	ErrPaymentStatusInvalid = newError(ErrInvalid, "payment status is invalid")
	ErrCustomerNotFound     = newError(ErrNotFound, "customer not found")
	ErrMembershipInvalid    = newError(ErrInvalid, "membership is invalid")
	ErrUserRequired         = newError(ErrInvalid, "user id is required")
)

// 认证
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = newError(ErrConflict, "email already registered")
	ErrEmailInvalid       = newError(ErrInvalid, "email is invalid")
	ErrPasswordTooShort   = newError(ErrInvalid, "password is too short")
	ErrTokenInvalid       = errors.New("token is invalid")
)
