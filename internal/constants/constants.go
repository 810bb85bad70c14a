package constants

// 订单支付状态
const (
	PaymentStatusPending  = "P"
	PaymentStatusComplete = "C"
	PaymentStatusFailed   = "F"
)

// 会员等级
const (
	MembershipBronze = "B"
	MembershipSilver = "S"
	MembershipGold   = "G"
)

// 库存状态判定阈值。后台列表与前台筛选使用不同阈值，两者互不影响。
const (
	AdminInventoryLowThreshold      = 80
	StorefrontInventoryLowThreshold = 10
)

// 库存状态
const (
	InventoryStatusLow = "Low"
	InventoryStatusOk  = "Ok"
)

// PaymentStatuses 全部合法支付状态
var PaymentStatuses = []string{PaymentStatusPending, PaymentStatusComplete, PaymentStatusFailed}

// Memberships 全部合法会员等级
var Memberships = []string{MembershipBronze, MembershipSilver, MembershipGold}

// 上下文键
const (
	CtxKeyUserID    = "user_id"
	CtxKeyIsStaff   = "is_staff"
	CtxKeyRequestID = "request_id"
)
