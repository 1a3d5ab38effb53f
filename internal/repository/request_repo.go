package repository

import (
	"islandhop/internal/domain"
	"islandhop/internal/models"

	"gorm.io/gorm"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(req *models.TripRequest) error {
	return r.db.Create(req).Error
}

func (r *RequestRepository) GetByID(id uint) (*models.TripRequest, error) {
	var req models.TripRequest
	err := r.db.First(&req, id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ListOpenByIsland returns open requests for one island, newest first.
// Providers only ever see their own island's board.
func (r *RequestRepository) ListOpenByIsland(island string) ([]models.TripRequest, error) {
	var requests []models.TripRequest
	err := r.db.Where("island = ? AND status = ?", island, domain.RequestOpen).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *RequestRepository) CreateResponse(resp *models.RequestResponse) error {
	return r.db.Create(resp).Error
}
