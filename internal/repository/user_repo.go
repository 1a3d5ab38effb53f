package repository

import (
	"islandhop/internal/domain"
	"islandhop/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var u models.User
	err := r.db.First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var u models.User
	err := r.db.Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(u *models.User) error {
	return r.db.Save(u).Error
}

func (r *UserRepository) ListProviders() ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role = ?", domain.RoleProvider).Order("created_at DESC").Find(&users).Error
	return users, err
}

// UpdateSubscription applies subscription field changes to a provider and
// appends the audit entry in the same transaction. The entry must carry
// the pre-image; the caller builds it before calling.
func (r *UserRepository) UpdateSubscription(providerID uint, updates map[string]interface{}, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", providerID).Updates(updates).Error
	})
}
