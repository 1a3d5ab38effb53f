package service

import (
	"path/filepath"
	"testing"

	"islandhop/internal/database"
	"islandhop/internal/domain"
	"islandhop/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a throwaway sqlite database with the full schema. Each
// test gets its own file so parallel tests cannot see each other's rows.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedProvider(t *testing.T, db *gorm.DB, email, tier string, customRate *float64) *models.User {
	t.Helper()
	u := &models.User{
		Email:                email,
		Role:                 domain.RoleProvider,
		Name:                 "Test Provider",
		Phone:                "+2482510000",
		Island:               "Mahé",
		SubscriptionType:     tier,
		CustomCommissionRate: customRate,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed provider: %v", err)
	}
	return u
}

func seedTrip(t *testing.T, db *gorm.DB, providerID uint, title string, price float64) *models.Trip {
	t.Helper()
	trip := &models.Trip{
		ProviderID:   providerID,
		Title:        title,
		Island:       "Mahé",
		Duration:     "4 hours",
		Price:        price,
		ActivityType: "snorkeling",
		Status:       domain.TripActive,
	}
	if err := db.Create(trip).Error; err != nil {
		t.Fatalf("seed trip: %v", err)
	}
	return trip
}

func floatPtr(v float64) *float64 { return &v }
