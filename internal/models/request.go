package models

import (
	"time"

	"gorm.io/gorm"
)

// TripRequest is a custom excursion request posted by a tourist. Requests
// stay open indefinitely; there is no closing flow yet.
type TripRequest struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	TouristName     string `gorm:"size:255;not null" json:"tourist_name"`
	TouristWhatsapp string `gorm:"size:32" json:"tourist_whatsapp"`
	Island          string `gorm:"size:100;not null;index" json:"island"`
	PreferredDate   string `gorm:"size:32" json:"preferred_date"`
	NumPeople       int    `gorm:"not null" json:"num_people"`
	ActivityType    string `gorm:"size:100" json:"activity_type"`
	BudgetRange     string `gorm:"size:100" json:"budget_range"`
	Description     string `gorm:"type:text" json:"description"`
	Status          string `gorm:"size:20;not null;default:'open';index" json:"status"` // open | closed

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (TripRequest) TableName() string { return "requests" }

// RequestResponse is a provider's proposal on an open request. A provider
// may submit several proposals to the same request.
type RequestResponse struct {
	ID                  uint    `gorm:"primaryKey" json:"id"`
	RequestID           uint    `gorm:"not null;index" json:"request_id"`
	ProviderID          uint    `gorm:"not null;index" json:"provider_id"`
	ProposalDescription string  `gorm:"type:text" json:"proposal_description"`
	ProposedPrice       float64 `gorm:"not null" json:"proposed_price"`
	Status              string  `gorm:"size:20;not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Request  TripRequest `gorm:"foreignKey:RequestID" json:"-"`
	Provider User        `gorm:"foreignKey:ProviderID" json:"-"`
}

func (RequestResponse) TableName() string { return "request_responses" }
