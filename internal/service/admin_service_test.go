package service

import (
	"errors"
	"strings"
	"testing"

	"islandhop/internal/domain"
	"islandhop/internal/models"
	"islandhop/internal/repository"
)

func TestUpdateProviderSubscriptionAuditsPreImage(t *testing.T) {
	db := testDB(t)
	provider := seedProvider(t, db, "override@example.com", domain.SubscriptionFree, nil)
	admin := seedAdmin(t, db)
	svc := NewAdminService(repository.NewUserRepository(db))

	err := svc.UpdateProviderSubscription(ProviderSubscriptionUpdate{
		ProviderID:           provider.ID,
		AdminID:              admin.ID,
		SubscriptionType:     domain.SubscriptionVIP,
		CustomCommissionRate: floatPtr(0.10),
	})
	if err != nil {
		t.Fatalf("UpdateProviderSubscription: %v", err)
	}

	var got models.User
	if err := db.First(&got, provider.ID).Error; err != nil {
		t.Fatalf("reload provider: %v", err)
	}
	if got.SubscriptionType != domain.SubscriptionVIP {
		t.Errorf("SubscriptionType = %q, want vip", got.SubscriptionType)
	}
	// The custom rate beats the vip tier rate from now on.
	if got.CommissionRate() != 0.10 {
		t.Errorf("CommissionRate() = %v, want 0.10", got.CommissionRate())
	}

	var entry models.AuditLog
	if err := db.Where("action_type = ?", domain.ActionUpdateSubscription).First(&entry).Error; err != nil {
		t.Fatalf("audit entry: %v", err)
	}
	if !strings.Contains(entry.OldValue, `"free"`) {
		t.Errorf("OldValue does not carry the pre-image tier: %s", entry.OldValue)
	}
	if !strings.Contains(entry.NewValue, `"vip"`) {
		t.Errorf("NewValue does not carry the new tier: %s", entry.NewValue)
	}
	if entry.TargetID != provider.ID {
		t.Errorf("TargetID = %d, want %d", entry.TargetID, provider.ID)
	}
}

func TestUpdateProviderSubscriptionValidation(t *testing.T) {
	db := testDB(t)
	provider := seedProvider(t, db, "badtier@example.com", domain.SubscriptionFree, nil)
	admin := seedAdmin(t, db)
	svc := NewAdminService(repository.NewUserRepository(db))

	err := svc.UpdateProviderSubscription(ProviderSubscriptionUpdate{
		ProviderID: provider.ID, AdminID: admin.ID, SubscriptionType: "enterprise",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("unknown tier: err = %v, want ErrValidation", err)
	}

	err = svc.UpdateProviderSubscription(ProviderSubscriptionUpdate{
		ProviderID: 9999, AdminID: admin.ID, SubscriptionType: domain.SubscriptionPro,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown provider: err = %v, want ErrNotFound", err)
	}
}

func TestClearingCustomRateRestoresTierRate(t *testing.T) {
	db := testDB(t)
	provider := seedProvider(t, db, "clearrate@example.com", domain.SubscriptionPro, floatPtr(0.02))
	admin := seedAdmin(t, db)
	svc := NewAdminService(repository.NewUserRepository(db))

	err := svc.UpdateProviderSubscription(ProviderSubscriptionUpdate{
		ProviderID:           provider.ID,
		AdminID:              admin.ID,
		SubscriptionType:     domain.SubscriptionPro,
		CustomCommissionRate: nil,
	})
	if err != nil {
		t.Fatalf("UpdateProviderSubscription: %v", err)
	}

	var got models.User
	if err := db.First(&got, provider.ID).Error; err != nil {
		t.Fatalf("reload provider: %v", err)
	}
	if got.CustomCommissionRate != nil {
		t.Errorf("CustomCommissionRate = %v, want cleared", *got.CustomCommissionRate)
	}
	if got.CommissionRate() != 0.08 {
		t.Errorf("CommissionRate() = %v, want pro rate 0.08", got.CommissionRate())
	}
}
