package domain

import "testing"

func TestResolveCommissionRate(t *testing.T) {
	custom := func(v float64) *float64 { return &v }

	tests := []struct {
		name             string
		customRate       *float64
		subscriptionType string
		want             float64
	}{
		{"free tier", nil, SubscriptionFree, 0.15},
		{"pro tier", nil, SubscriptionPro, 0.08},
		{"vip tier", nil, SubscriptionVIP, 0.06},
		{"unknown tier falls back", nil, "platinum", 0.15},
		{"empty tier falls back", nil, "", 0.15},
		{"custom rate wins over tier", custom(0.10), SubscriptionVIP, 0.10},
		{"custom zero is honored", custom(0), SubscriptionFree, 0},
		{"custom above one is honored", custom(1.5), SubscriptionPro, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveCommissionRate(tt.customRate, tt.subscriptionType)
			if got != tt.want {
				t.Errorf("ResolveCommissionRate(%v, %q) = %v, want %v", tt.customRate, tt.subscriptionType, got, tt.want)
			}
		})
	}
}
