package repository

import (
	"fmt"

	"islandhop/internal/domain"
	"islandhop/internal/models"

	"gorm.io/gorm"
)

// ErrBidResolved means the bid already left the pending state. Acceptance
// races resolve to exactly one winner; the loser gets this.
var ErrBidResolved = fmt.Errorf("bid already resolved: %w", domain.ErrConflict)

type BidRepository struct {
	db *gorm.DB
}

func NewBidRepository(db *gorm.DB) *BidRepository {
	return &BidRepository{db: db}
}

func (r *BidRepository) Create(b *models.Bid) error {
	return r.db.Create(b).Error
}

// GetForProvider loads a bid only if it belongs to the given provider.
// A foreign bid is indistinguishable from an absent one.
func (r *BidRepository) GetForProvider(bidID, providerID uint) (*models.Bid, error) {
	var b models.Bid
	err := r.db.Where("id = ? AND provider_id = ?", bidID, providerID).First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BidRepository) ListByProvider(providerID uint) ([]models.Bid, error) {
	var bids []models.Bid
	err := r.db.Preload("Trip").
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&bids).Error
	return bids, err
}

// Respond records a decline or counter. The write is unconditional,
// matching the permissive provider UI.
func (r *BidRepository) Respond(bidID uint, status, response string, counterOffer *float64) error {
	return r.db.Model(&models.Bid{}).Where("id = ?", bidID).Updates(map[string]interface{}{
		"status":            status,
		"provider_response": response,
		"counter_offer":     counterOffer,
	}).Error
}

// Accept creates the booking and flips the bid to accepted in one
// transaction. The bid update is conditional on the bid still being
// pending: if another acceptance won the race the whole transaction rolls
// back, the booking insert included, and ErrBidResolved is returned.
func (r *BidRepository) Accept(bidID, providerID uint, response string, counterOffer *float64, booking *models.Booking) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(booking).Error; err != nil {
			return err
		}
		res := tx.Model(&models.Bid{}).
			Where("id = ? AND provider_id = ? AND status = ?", bidID, providerID, domain.BidPending).
			Updates(map[string]interface{}{
				"status":            domain.BidAccepted,
				"provider_response": response,
				"counter_offer":     counterOffer,
				"booking_id":        booking.ID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrBidResolved
		}
		return nil
	})
}
