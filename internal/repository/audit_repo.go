package repository

import (
	"islandhop/internal/models"

	"gorm.io/gorm"
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

// List returns the newest entries with the acting admin preloaded. The
// ledger is append-only; there are no update or delete methods.
func (r *AuditLogRepository) List(limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var entries []models.AuditLog
	err := r.db.Preload("Admin").Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
