package models

import (
	"time"

	"islandhop/internal/domain"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Email        string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string         `gorm:"size:255" json:"-"`
	Role         string         `gorm:"size:20;not null;index" json:"role"` // provider | admin
	Name         string         `gorm:"size:255" json:"name"`
	Phone        string         `gorm:"size:32" json:"phone"`
	Island       string         `gorm:"size:100;index" json:"island"`
	Description  string         `gorm:"type:text" json:"description"`
	ImageURL     string         `gorm:"size:512" json:"image_url"`

	// Subscription fields only apply to providers. paid_until is stored
	// and shown but never consulted when resolving commission or gating
	// tier features; benefits last until an admin changes the tier.
	SubscriptionType          string     `gorm:"size:10;not null;default:'free'" json:"subscription_type"`
	CustomCommissionRate      *float64   `json:"custom_commission_rate"`
	SubscriptionPaidUntil     *time.Time `json:"subscription_paid_until"`
	SubscriptionPaymentMethod string     `gorm:"size:50" json:"subscription_payment_method"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) IsProvider() bool { return u.Role == domain.RoleProvider }
func (u *User) IsAdmin() bool    { return u.Role == domain.RoleAdmin }

// CommissionRate resolves the effective commission rate for this provider.
func (u *User) CommissionRate() float64 {
	return domain.ResolveCommissionRate(u.CustomCommissionRate, u.SubscriptionType)
}

// HasBidAccess reports whether the tier unlocks the bid inbox and the
// custom-request board. A custom commission rate has no effect here.
func (u *User) HasBidAccess() bool {
	return u.SubscriptionType == domain.SubscriptionPro || u.SubscriptionType == domain.SubscriptionVIP
}

func (User) TableName() string { return "users" }
