package models

import (
	"time"

	"gorm.io/gorm"
)

// SubscriptionTransaction records an offline subscription payment pending
// admin review. Approval propagates tier, paid-until and payment method
// onto the provider row; rejection never touches the provider.
type SubscriptionTransaction struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	ProviderID       uint       `gorm:"not null;index" json:"provider_id"`
	SubscriptionType string     `gorm:"size:10;not null" json:"subscription_type"`
	Amount           float64    `gorm:"not null" json:"amount"`
	PaymentMethod    string     `gorm:"size:50" json:"payment_method"`
	PaymentReference string     `gorm:"size:255" json:"payment_reference"`
	Status           string     `gorm:"size:20;not null;default:'pending';index" json:"status"` // pending | approved | rejected
	ApprovedBy       *uint      `json:"approved_by"`
	ApprovedAt       *time.Time `json:"approved_at"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Provider User `gorm:"foreignKey:ProviderID" json:"-"`
}

func (SubscriptionTransaction) TableName() string { return "subscription_transactions" }
