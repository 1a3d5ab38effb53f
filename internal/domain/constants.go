package domain

const (
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

const (
	SubscriptionFree = "free"
	SubscriptionPro  = "pro"
	SubscriptionVIP  = "vip"
)

const (
	TripActive   = "active"
	TripInactive = "inactive"
)

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

const (
	BidPending   = "pending"
	BidAccepted  = "accepted"
	BidDeclined  = "declined"
	BidCountered = "countered"
)

const (
	RequestOpen   = "open"
	RequestClosed = "closed"
)

const (
	ResponsePending = "pending"
)

const (
	TxnPending  = "pending"
	TxnApproved = "approved"
	TxnRejected = "rejected"
)

const (
	ActionUpdateSubscription  = "update_subscription"
	ActionApproveSubscription = "approve_subscription"
	ActionRejectSubscription  = "reject_subscription"
)

// BookingCodeLength is the length of the public booking reference code.
const BookingCodeLength = 10

// ValidBookingStatus reports whether s is a known booking status. The
// lifecycle is deliberately permissive: any known status may be written
// regardless of the current one (admin override behavior), so only the
// value itself is checked.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	return s == PaymentPending || s == PaymentPaid
}

// ValidBidResponse reports whether s is a status a provider may move a
// pending bid to.
func ValidBidResponse(s string) bool {
	return s == BidAccepted || s == BidDeclined || s == BidCountered
}

func ValidSubscriptionType(s string) bool {
	return s == SubscriptionFree || s == SubscriptionPro || s == SubscriptionVIP
}

func ValidTxnDecision(s string) bool {
	return s == TxnApproved || s == TxnRejected
}
