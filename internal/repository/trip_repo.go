package repository

import (
	"islandhop/internal/domain"
	"islandhop/internal/models"

	"gorm.io/gorm"
)

// TripFilter narrows the public trip search. Zero values mean "no filter".
type TripFilter struct {
	Island       string
	ActivityType string
	MinPrice     float64
	MaxPrice     float64
}

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) Create(t *models.Trip) error {
	return r.db.Create(t).Error
}

func (r *TripRepository) GetByID(id uint) (*models.Trip, error) {
	var t models.Trip
	err := r.db.First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetDetail loads a trip with its provider for the public detail page.
func (r *TripRepository) GetDetail(id uint) (*models.Trip, error) {
	var t models.Trip
	err := r.db.Preload("Provider").First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Search returns active trips matching the filter, newest first, with
// providers preloaded for display.
func (r *TripRepository) Search(f TripFilter) ([]models.Trip, error) {
	q := r.db.Preload("Provider").Where("status = ?", domain.TripActive)
	if f.Island != "" {
		q = q.Where("island = ?", f.Island)
	}
	if f.ActivityType != "" {
		q = q.Where("activity_type = ?", f.ActivityType)
	}
	if f.MinPrice > 0 {
		q = q.Where("price >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price <= ?", f.MaxPrice)
	}
	var trips []models.Trip
	err := q.Order("created_at DESC").Find(&trips).Error
	return trips, err
}

func (r *TripRepository) ListByProvider(providerID uint) ([]models.Trip, error) {
	var trips []models.Trip
	err := r.db.Where("provider_id = ?", providerID).Order("created_at DESC").Find(&trips).Error
	return trips, err
}

// UpdateOwned writes trip fields only when the trip belongs to the given
// provider. Returns the number of rows touched so the caller can tell an
// absent trip from a foreign one.
func (r *TripRepository) UpdateOwned(tripID, providerID uint, updates map[string]interface{}) (int64, error) {
	res := r.db.Model(&models.Trip{}).
		Where("id = ? AND provider_id = ?", tripID, providerID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// Islands lists the distinct islands that currently have active trips.
func (r *TripRepository) Islands() ([]string, error) {
	var islands []string
	err := r.db.Model(&models.Trip{}).
		Distinct("island").
		Where("status = ?", domain.TripActive).
		Order("island").
		Pluck("island", &islands).Error
	return islands, err
}
