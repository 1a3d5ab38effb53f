package models

import (
	"time"

	"gorm.io/gorm"
)

// Bid is a tourist's price proposal on a listed trip. bid_amount and
// counter_offer are per-person prices. booking_id is set exactly when the
// bid is accepted and the booking is created in the same transaction.
type Bid struct {
	ID              uint     `gorm:"primaryKey" json:"id"`
	TripID          uint     `gorm:"not null;index" json:"trip_id"`
	ProviderID      uint     `gorm:"not null;index" json:"provider_id"`
	TouristName     string   `gorm:"size:255;not null" json:"tourist_name"`
	TouristWhatsapp string   `gorm:"size:32" json:"tourist_whatsapp"`
	ProposedDate    string   `gorm:"size:32" json:"proposed_date"`
	NumPeople       int      `gorm:"not null" json:"num_people"`
	BidAmount       float64  `gorm:"not null" json:"bid_amount"`
	Notes           string   `gorm:"type:text" json:"notes"`
	Status          string   `gorm:"size:20;not null;default:'pending';index" json:"status"` // pending | accepted | declined | countered
	CounterOffer    *float64 `json:"counter_offer"`
	ProviderResponse string  `gorm:"type:text" json:"provider_response"`
	BookingID       *uint    `json:"booking_id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Trip    Trip     `gorm:"foreignKey:TripID" json:"-"`
	Booking *Booking `gorm:"foreignKey:BookingID" json:"-"`
}

func (Bid) TableName() string { return "bids" }
