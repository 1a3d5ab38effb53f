package repository

import (
	"strings"

	"islandhop/internal/models"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(b *models.Booking) error {
	return r.db.Create(b).Error
}

func (r *BookingRepository) GetByID(id uint) (*models.Booking, error) {
	var b models.Booking
	err := r.db.First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetByCode is the public lookup behind the confirmation page. Codes are
// stored uppercase, so normalizing the input makes the match
// case-insensitive on any collation.
func (r *BookingRepository) GetByCode(code string) (*models.Booking, error) {
	var b models.Booking
	err := r.db.Preload("Trip").Preload("Provider").
		Where("booking_code = ?", strings.ToUpper(code)).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) ListByProvider(providerID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("Trip").
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) ListAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("Trip").Preload("Provider").
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// UpdateFields writes status/payment fields on a booking. Ownership is
// checked by the service before calling; the amount and commission
// columns are never part of updates.
func (r *BookingRepository) UpdateFields(id uint, updates map[string]interface{}) error {
	return r.db.Model(&models.Booking{}).Where("id = ?", id).Updates(updates).Error
}
