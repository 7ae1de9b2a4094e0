package constants

// Payment status (stored on the order as user-visible text)
const (
	PaymentStatusUnpaid = "Ödənilməyib"
	PaymentStatusPaid   = "Ödənilib"
)

// Overall payment status (derived, never stored)
const (
	OverallUnpaid  = "unpaid"
	OverallPartial = "partial"
	OverallPaid    = "paid"
)

// Detailed cost categories tracked per order
const (
	CostKeyPaket   = "paket"
	CostKeyBeledci = "beledci"
	CostKeyMuzey   = "muzey"
	CostKeyViza    = "viza"
	CostKeyDiger   = "diger"
)

// CostKeys is the closed set of detailed-cost categories.
var CostKeys = []string{CostKeyPaket, CostKeyBeledci, CostKeyMuzey, CostKeyViza, CostKeyDiger}

// Order numbering: satış nömrələri heç vaxt bu rəqəmdən aşağı düşmür
const SatisNoFloor = 1694

// Notification thresholds
const (
	LargeSaleThreshold = 10000
	CheckinWindowDays  = 3
)

// OrderMilestones are the per-user order counts worth celebrating.
var OrderMilestones = []int{10, 50, 100}

// Audit action kinds
const (
	ActionCreateOrder  = "CREATE_ORDER"
	ActionUpdateOrder  = "UPDATE_ORDER"
	ActionDeleteOrder  = "DELETE_ORDER"
	ActionUpdateNote   = "UPDATE_NOTE"
	ActionConfirmation = "CONFIRMATION_LINK"
)
