package domain

// Commission rates by subscription tier.
var tierCommissionRates = map[string]float64{
	SubscriptionFree: 0.15,
	SubscriptionPro:  0.08,
	SubscriptionVIP:  0.06,
}

// DefaultCommissionRate is the free-tier rate; it also acts as the
// fallback for unknown or empty subscription types.
const DefaultCommissionRate = 0.15

// ResolveCommissionRate returns the effective commission rate for a
// provider. An admin-set custom rate wins over the tier rate and is
// returned verbatim, with no bounds check. The caller snapshots the
// result onto the booking at creation time; later subscription changes
// never alter existing bookings.
func ResolveCommissionRate(customRate *float64, subscriptionType string) float64 {
	if customRate != nil {
		return *customRate
	}
	if rate, ok := tierCommissionRates[subscriptionType]; ok {
		return rate
	}
	return DefaultCommissionRate
}
