package service

import (
	"errors"
	"fmt"
	"time"

	"islandhop/internal/domain"
	"islandhop/internal/models"
	"islandhop/internal/repository"

	"gorm.io/gorm"
)

var ErrTransactionNotFound = fmt.Errorf("transaction %w", domain.ErrNotFound)

type SubscriptionService struct {
	subs  *repository.SubscriptionRepository
	users *repository.UserRepository
}

func NewSubscriptionService(
	subs *repository.SubscriptionRepository,
	users *repository.UserRepository,
) *SubscriptionService {
	return &SubscriptionService{subs: subs, users: users}
}

type OfflinePaymentInput struct {
	ProviderID       uint
	SubscriptionType string
	Amount           float64
	PaymentMethod    string
	PaymentReference string
}

// SubmitOfflinePayment records a bank-transfer/cash payment for admin
// review. The amount is taken as submitted; nothing checks it against a
// plan price.
func (s *SubscriptionService) SubmitOfflinePayment(in OfflinePaymentInput) (*models.SubscriptionTransaction, error) {
	if !domain.ValidSubscriptionType(in.SubscriptionType) {
		return nil, fmt.Errorf("%w: unknown subscription type %q", domain.ErrValidation, in.SubscriptionType)
	}
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	txn := &models.SubscriptionTransaction{
		ProviderID:       in.ProviderID,
		SubscriptionType: in.SubscriptionType,
		Amount:           in.Amount,
		PaymentMethod:    in.PaymentMethod,
		PaymentReference: in.PaymentReference,
		Status:           domain.TxnPending,
	}
	if err := s.subs.Create(txn); err != nil {
		return nil, err
	}
	return txn, nil
}

type ReviewTransactionInput struct {
	TransactionID         uint
	AdminID               uint
	Decision              string // approved | rejected
	SubscriptionPaidUntil *time.Time
}

// Review stamps the admin's decision on the transaction. Approval
// propagates tier, paid-until and payment method onto the provider;
// rejection stamps and logs but never touches the provider row. Both
// outcomes land in the audit ledger.
func (s *SubscriptionService) Review(in ReviewTransactionInput) (*models.SubscriptionTransaction, error) {
	if !domain.ValidTxnDecision(in.Decision) {
		return nil, fmt.Errorf("%w: decision must be approved or rejected", domain.ErrValidation)
	}
	txn, err := s.subs.GetByID(in.TransactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	now := time.Now()
	txn.Status = in.Decision
	txn.ApprovedBy = &in.AdminID
	txn.ApprovedAt = &now

	entry := &models.AuditLog{
		AdminID:    in.AdminID,
		TargetType: "provider",
		TargetID:   txn.ProviderID,
		NewValue:   txn.SubscriptionType,
	}
	var providerUpdates map[string]interface{}
	if in.Decision == domain.TxnApproved {
		providerUpdates = map[string]interface{}{
			"subscription_type":           txn.SubscriptionType,
			"subscription_paid_until":     in.SubscriptionPaidUntil,
			"subscription_payment_method": txn.PaymentMethod,
		}
		entry.ActionType = domain.ActionApproveSubscription
		entry.Description = fmt.Sprintf("Approved %s subscription payment", txn.SubscriptionType)
	} else {
		entry.ActionType = domain.ActionRejectSubscription
		entry.Description = fmt.Sprintf("Rejected %s subscription payment", txn.SubscriptionType)
	}
	if err := s.subs.Review(txn, providerUpdates, entry); err != nil {
		return nil, err
	}
	return txn, nil
}
