package i18n

var messages = map[string]map[string]string{
	LocaleEN: {
		"error.bad_request":                "Invalid request parameters",
		"error.unauthorized":               "Authentication credentials were not provided",
		"error.token_invalid":              "Token is invalid or expired",
		"error.forbidden":                  "You do not have permission to perform this action",
		"error.authz_unavailable":          "Authorization service unavailable",
		"error.not_found":                  "Not found",
		"error.internal":                   "Internal server error",
		"error.rate_limited":               "Too many requests, please retry in %d seconds",
		"error.login_rate_limited":         "Too many login attempts, please retry in %d seconds",
		"error.checkout_rate_limited":      "Too many checkout attempts, please retry in %d seconds",
		"error.rate_limit_unavailable":     "Rate limiter unavailable",
		"error.collection_not_found":       "Collection not found",
		"error.collection_in_use":          "Collection can not be deleted, because it includes one or more products.",
		"error.collection_title_required":  "Collection title is required",
		"error.product_not_found":          "Product not found",
		"error.product_in_use":             "Product can not be deleted, because it is associated with one or more order items.",
		"error.product_slug_exists":        "A product with this slug already exists",
		"error.product_invalid":            "Product title and slug are required and inventory can not be negative",
		"error.product_price_invalid":      "Unit price must be greater than zero",
		"error.product_delete_failed":      "Product delete failed",
		"error.inventory_ids_required":     "Product ids are required",
		"error.review_invalid":             "Review name and description are required",
		"error.cart_not_found":             "Cart not found",
		"error.cart_id_invalid":            "Cart id is malformed",
		"error.cart_item_not_found":        "Cart item not found",
		"error.cart_item_quantity_invalid": "Quantity must be at least 1",
		"error.cart_empty":                 "The cart is empty.",
		"error.order_not_found":            "Order not found",
		"error.order_create_failed":        "Order could not be placed",
		"error.payment_status_invalid":     "Payment status must be one of P, C, F",
		"error.customer_not_found":         "Customer not found",
		"error.membership_invalid":         "Membership must be one of B, S, G",
		"error.invalid_credentials":        "Invalid email or password",
		"error.email_exists":               "Email already registered",
		"error.email_invalid":              "Email is invalid",
		"error.password_too_short":         "Password is too short",
		"success.deleted":                  "Deleted",
	},
	LocaleZH: {
		"error.bad_request":                "请求参数错误",
		"error.unauthorized":               "未提供认证信息",
		"error.token_invalid":              "Token 无效或已过期",
		"error.forbidden":                  "无权执行此操作",
		"error.authz_unavailable":          "授权服务不可用",
		"error.not_found":                  "资源不存在",
		"error.internal":                   "服务器内部错误",
		"error.rate_limited":               "请求过于频繁，请 %d 秒后重试",
		"error.login_rate_limited":         "登录尝试过多，请 %d 秒后重试",
		"error.checkout_rate_limited":      "下单过于频繁，请 %d 秒后重试",
		"error.rate_limit_unavailable":     "限流服务不可用",
		"error.collection_not_found":       "商品集合不存在",
		"error.collection_in_use":          "集合下仍有商品，无法删除",
		"error.collection_title_required":  "集合名称不能为空",
		"error.product_not_found":          "商品不存在",
		"error.product_in_use":             "商品已关联订单项，无法删除",
		"error.product_slug_exists":        "商品 slug 已存在",
		"error.product_invalid":            "商品名称与 slug 必填，库存不能为负",
		"error.product_price_invalid":      "单价必须大于 0",
		"error.product_delete_failed":      "商品删除失败",
		"error.inventory_ids_required":     "商品 ID 不能为空",
		"error.review_invalid":             "评价姓名与内容不能为空",
		"error.cart_not_found":             "购物车不存在",
		"error.cart_id_invalid":            "购物车 ID 格式错误",
		"error.cart_item_not_found":        "购物车项不存在",
		"error.cart_item_quantity_invalid": "数量至少为 1",
		"error.cart_empty":                 "购物车为空",
		"error.order_not_found":            "订单不存在",
		"error.order_create_failed":        "下单失败",
		"error.payment_status_invalid":     "支付状态只能为 P、C 或 F",
		"error.customer_not_found":         "顾客不存在",
		"error.membership_invalid":         "会员等级只能为 B、S 或 G",
		"error.invalid_credentials":        "邮箱或密码错误",
		"error.email_exists":               "邮箱已注册",
		"error.email_invalid":              "邮箱格式错误",
		"error.password_too_short":         "密码长度不足",
		"success.deleted":                  "删除成功",
	},
	LocaleTW: {
		"error.forbidden":          "無權執行此操作",
		"error.cart_empty":         "購物車為空",
		"error.product_in_use":     "商品已關聯訂單項，無法刪除",
		"error.rate_limited":       "請求過於頻繁，請 %d 秒後重試",
		"error.login_rate_limited": "登入嘗試過多，請 %d 秒後重試",
	},
}
