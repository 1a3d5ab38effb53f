package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"islandhop/internal/domain"
	"islandhop/internal/models"
	"islandhop/internal/repository"

	"gorm.io/gorm"
)

var ErrProviderNotFound = fmt.Errorf("provider %w", domain.ErrNotFound)

type AdminService struct {
	users *repository.UserRepository
}

func NewAdminService(users *repository.UserRepository) *AdminService {
	return &AdminService{users: users}
}

type ProviderSubscriptionUpdate struct {
	ProviderID            uint
	AdminID               uint
	SubscriptionType      string
	CustomCommissionRate  *float64
	SubscriptionPaidUntil *time.Time
}

// UpdateProviderSubscription applies an admin override of a provider's
// tier, custom commission rate and paid-until date. The audit entry is
// built from the pre-image before the update and written in the same
// transaction. The custom rate is stored verbatim, no bounds check.
func (s *AdminService) UpdateProviderSubscription(in ProviderSubscriptionUpdate) error {
	if !domain.ValidSubscriptionType(in.SubscriptionType) {
		return fmt.Errorf("%w: unknown subscription type %q", domain.ErrValidation, in.SubscriptionType)
	}
	provider, err := s.users.GetByID(in.ProviderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProviderNotFound
		}
		return err
	}

	oldValue, _ := json.Marshal(map[string]interface{}{
		"subscription_type":       provider.SubscriptionType,
		"custom_commission_rate":  provider.CustomCommissionRate,
		"subscription_paid_until": provider.SubscriptionPaidUntil,
	})
	newValue, _ := json.Marshal(map[string]interface{}{
		"subscription_type":       in.SubscriptionType,
		"custom_commission_rate":  in.CustomCommissionRate,
		"subscription_paid_until": in.SubscriptionPaidUntil,
	})
	entry := &models.AuditLog{
		AdminID:     in.AdminID,
		ActionType:  domain.ActionUpdateSubscription,
		TargetType:  "provider",
		TargetID:    provider.ID,
		OldValue:    string(oldValue),
		NewValue:    string(newValue),
		Description: fmt.Sprintf("Updated subscription for %s", provider.Name),
	}
	updates := map[string]interface{}{
		"subscription_type":       in.SubscriptionType,
		"custom_commission_rate":  in.CustomCommissionRate,
		"subscription_paid_until": in.SubscriptionPaidUntil,
	}
	return s.users.UpdateSubscription(provider.ID, updates, entry)
}
