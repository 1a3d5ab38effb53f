package service

import (
	"errors"
	"testing"
	"time"

	"islandhop/internal/domain"
	"islandhop/internal/models"
	"islandhop/internal/repository"

	"gorm.io/gorm"
)

func newSubscriptionService(db *gorm.DB) *SubscriptionService {
	return NewSubscriptionService(
		repository.NewSubscriptionRepository(db),
		repository.NewUserRepository(db),
	)
}

func seedAdmin(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	admin := &models.User{Email: "admin@example.com", Role: domain.RoleAdmin, Name: "Admin"}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return admin
}

func TestSubmitOfflinePaymentValidation(t *testing.T) {
	db := testDB(t)
	provider := seedProvider(t, db, "pay@example.com", domain.SubscriptionFree, nil)
	svc := newSubscriptionService(db)

	_, err := svc.SubmitOfflinePayment(OfflinePaymentInput{
		ProviderID: provider.ID, SubscriptionType: "gold", Amount: 50, PaymentMethod: "bank_transfer",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("unknown tier: err = %v, want ErrValidation", err)
	}

	_, err = svc.SubmitOfflinePayment(OfflinePaymentInput{
		ProviderID: provider.ID, SubscriptionType: domain.SubscriptionPro, Amount: 0, PaymentMethod: "cash",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("zero amount: err = %v, want ErrValidation", err)
	}

	txn, err := svc.SubmitOfflinePayment(OfflinePaymentInput{
		ProviderID: provider.ID, SubscriptionType: domain.SubscriptionPro, Amount: 49.99,
		PaymentMethod: "bank_transfer", PaymentReference: "TRF-1001",
	})
	if err != nil {
		t.Fatalf("SubmitOfflinePayment: %v", err)
	}
	if txn.Status != domain.TxnPending {
		t.Errorf("Status = %q, want pending", txn.Status)
	}
}

func TestReviewApprovePropagatesToProvider(t *testing.T) {
	db := testDB(t)
	provider := seedProvider(t, db, "upgrade@example.com", domain.SubscriptionFree, nil)
	admin := seedAdmin(t, db)
	svc := newSubscriptionService(db)

	txn, err := svc.SubmitOfflinePayment(OfflinePaymentInput{
		ProviderID: provider.ID, SubscriptionType: domain.SubscriptionVIP, Amount: 99,
		PaymentMethod: "bank_transfer", PaymentReference: "TRF-2002",
	})
	if err != nil {
		t.Fatalf("SubmitOfflinePayment: %v", err)
	}

	paidUntil := time.Date(2027, 8, 30, 0, 0, 0, 0, time.UTC)
	reviewed, err := svc.Review(ReviewTransactionInput{
		TransactionID: txn.ID, AdminID: admin.ID, Decision: domain.TxnApproved,
		SubscriptionPaidUntil: &paidUntil,
	})
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if reviewed.Status != domain.TxnApproved || reviewed.ApprovedBy == nil || reviewed.ApprovedAt == nil {
		t.Errorf("transaction not stamped: status=%q by=%v at=%v", reviewed.Status, reviewed.ApprovedBy, reviewed.ApprovedAt)
	}

	var got models.User
	if err := db.First(&got, provider.ID).Error; err != nil {
		t.Fatalf("reload provider: %v", err)
	}
	if got.SubscriptionType != domain.SubscriptionVIP {
		t.Errorf("SubscriptionType = %q, want vip", got.SubscriptionType)
	}
	if got.SubscriptionPaidUntil == nil {
		t.Error("SubscriptionPaidUntil not set")
	}
	if got.SubscriptionPaymentMethod != "bank_transfer" {
		t.Errorf("SubscriptionPaymentMethod = %q, want bank_transfer", got.SubscriptionPaymentMethod)
	}

	var entry models.AuditLog
	if err := db.Where("action_type = ?", domain.ActionApproveSubscription).First(&entry).Error; err != nil {
		t.Fatalf("audit entry: %v", err)
	}
	if entry.AdminID != admin.ID || entry.TargetID != provider.ID {
		t.Errorf("audit entry admin=%d target=%d, want %d/%d", entry.AdminID, entry.TargetID, admin.ID, provider.ID)
	}
}

func TestReviewRejectLeavesProviderUntouched(t *testing.T) {
	db := testDB(t)
	provider := seedProvider(t, db, "rejected@example.com", domain.SubscriptionFree, nil)
	admin := seedAdmin(t, db)
	svc := newSubscriptionService(db)

	txn, err := svc.SubmitOfflinePayment(OfflinePaymentInput{
		ProviderID: provider.ID, SubscriptionType: domain.SubscriptionPro, Amount: 49,
		PaymentMethod: "cash",
	})
	if err != nil {
		t.Fatalf("SubmitOfflinePayment: %v", err)
	}

	reviewed, err := svc.Review(ReviewTransactionInput{
		TransactionID: txn.ID, AdminID: admin.ID, Decision: domain.TxnRejected,
	})
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if reviewed.Status != domain.TxnRejected {
		t.Errorf("Status = %q, want rejected", reviewed.Status)
	}

	var got models.User
	if err := db.First(&got, provider.ID).Error; err != nil {
		t.Fatalf("reload provider: %v", err)
	}
	if got.SubscriptionType != domain.SubscriptionFree || got.SubscriptionPaidUntil != nil {
		t.Errorf("provider mutated by rejection: tier=%q paidUntil=%v", got.SubscriptionType, got.SubscriptionPaidUntil)
	}

	// Rejection still lands in the audit ledger.
	var count int64
	if err := db.Model(&models.AuditLog{}).Where("action_type = ?", domain.ActionRejectSubscription).Count(&count).Error; err != nil {
		t.Fatalf("count audit entries: %v", err)
	}
	if count != 1 {
		t.Errorf("reject audit entries = %d, want 1", count)
	}
}

func TestReviewUnknownTransaction(t *testing.T) {
	db := testDB(t)
	admin := seedAdmin(t, db)
	svc := newSubscriptionService(db)

	_, err := svc.Review(ReviewTransactionInput{TransactionID: 404, AdminID: admin.ID, Decision: domain.TxnApproved})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown txn: err = %v, want ErrNotFound", err)
	}

	_, err = svc.Review(ReviewTransactionInput{TransactionID: 404, AdminID: admin.ID, Decision: "maybe"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("bad decision: err = %v, want ErrValidation", err)
	}
}
