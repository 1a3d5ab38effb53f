package repository

import (
	"islandhop/internal/domain"
	"islandhop/internal/models"

	"gorm.io/gorm"
)

type MarketplaceStats struct {
	TotalBookings     int64   `json:"total_bookings"`
	CompletedBookings int64   `json:"completed_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalCommission   float64 `json:"total_commission"`
	ActiveProviders   int64   `json:"active_providers"`
	ActiveTrips       int64   `json:"active_trips"`
	PendingBids       int64   `json:"pending_bids"`
	OpenRequests      int64   `json:"open_requests"`
}

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// GetMarketplaceStats aggregates the admin dashboard numbers. Revenue and
// commission only count completed bookings.
func (r *AdminRepository) GetMarketplaceStats() (*MarketplaceStats, error) {
	var s MarketplaceStats
	r.db.Model(&models.Booking{}).Count(&s.TotalBookings)
	r.db.Model(&models.Booking{}).Where("status = ?", domain.BookingCompleted).Count(&s.CompletedBookings)

	var revenue struct{ Total float64 }
	r.db.Model(&models.Booking{}).
		Select("COALESCE(SUM(total_amount), 0) as total").
		Where("status = ?", domain.BookingCompleted).
		Scan(&revenue)
	s.TotalRevenue = revenue.Total

	var commission struct{ Total float64 }
	r.db.Model(&models.Booking{}).
		Select("COALESCE(SUM(commission_amount), 0) as total").
		Where("status = ?", domain.BookingCompleted).
		Scan(&commission)
	s.TotalCommission = commission.Total

	r.db.Model(&models.User{}).Where("role = ?", domain.RoleProvider).Count(&s.ActiveProviders)
	r.db.Model(&models.Trip{}).Where("status = ?", domain.TripActive).Count(&s.ActiveTrips)
	r.db.Model(&models.Bid{}).Where("status = ?", domain.BidPending).Count(&s.PendingBids)
	r.db.Model(&models.TripRequest{}).Where("status = ?", domain.RequestOpen).Count(&s.OpenRequests)
	return &s, nil
}
