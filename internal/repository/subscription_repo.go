package repository

import (
	"islandhop/internal/domain"
	"islandhop/internal/models"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(t *models.SubscriptionTransaction) error {
	return r.db.Create(t).Error
}

func (r *SubscriptionRepository) GetByID(id uint) (*models.SubscriptionTransaction, error) {
	var t models.SubscriptionTransaction
	err := r.db.First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SubscriptionRepository) ListByProvider(providerID uint) ([]models.SubscriptionTransaction, error) {
	var txns []models.SubscriptionTransaction
	err := r.db.Where("provider_id = ?", providerID).Order("created_at DESC").Find(&txns).Error
	return txns, err
}

func (r *SubscriptionRepository) ListPending() ([]models.SubscriptionTransaction, error) {
	var txns []models.SubscriptionTransaction
	err := r.db.Preload("Provider").
		Where("status = ?", domain.TxnPending).
		Order("created_at DESC").
		Find(&txns).Error
	return txns, err
}

// Review stamps the decision on the transaction, optionally applies
// subscription changes to the provider, and appends the audit entry, all
// in one transaction. providerUpdates is nil on rejection.
func (r *SubscriptionRepository) Review(txn *models.SubscriptionTransaction, providerUpdates map[string]interface{}, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(txn).Error; err != nil {
			return err
		}
		if providerUpdates != nil {
			if err := tx.Model(&models.User{}).Where("id = ?", txn.ProviderID).Updates(providerUpdates).Error; err != nil {
				return err
			}
		}
		return tx.Create(entry).Error
	})
}
