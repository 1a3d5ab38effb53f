package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking snapshots price and commission at creation time. provider_id is
// copied from the trip so reassigning a trip later cannot rewrite
// historical bookings, and total_amount/commission_rate/commission_amount
// are immutable once written.
type Booking struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	TripID          uint    `gorm:"not null;index" json:"trip_id"`
	ProviderID      uint    `gorm:"not null;index" json:"provider_id"`
	TouristName     string  `gorm:"size:255;not null" json:"tourist_name"`
	TouristWhatsapp string  `gorm:"size:32" json:"tourist_whatsapp"`
	BookingDate     string  `gorm:"size:32" json:"booking_date"`
	NumPeople       int     `gorm:"not null" json:"num_people"`
	Notes           string  `gorm:"type:text" json:"notes"`
	BookingCode     string  `gorm:"uniqueIndex;size:10;not null" json:"booking_code"`
	QRCode          string  `gorm:"type:text" json:"qr_code"` // PNG data URL
	TotalAmount     float64 `gorm:"not null" json:"total_amount"`
	CommissionRate  float64 `gorm:"not null" json:"commission_rate"`
	CommissionAmount float64 `gorm:"not null" json:"commission_amount"`
	Status          string  `gorm:"size:20;not null;default:'pending';index" json:"status"`
	PaymentStatus   string  `gorm:"size:20;not null;default:'pending'" json:"payment_status"`
	CompletedAt     *time.Time `json:"completed_at"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Trip     Trip `gorm:"foreignKey:TripID" json:"-"`
	Provider User `gorm:"foreignKey:ProviderID" json:"-"`
}

func (Booking) TableName() string { return "bookings" }
