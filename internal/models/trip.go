package models

import (
	"time"

	"gorm.io/gorm"
)

type Trip struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	ProviderID    uint    `gorm:"not null;index" json:"provider_id"`
	Title         string  `gorm:"size:255;not null" json:"title"`
	Description   string  `gorm:"type:text" json:"description"`
	Island        string  `gorm:"size:100;not null;index" json:"island"`
	Duration      string  `gorm:"size:100" json:"duration"`
	Price         float64 `gorm:"not null" json:"price"` // per person
	MaxGroupSize  *int    `json:"max_group_size"`
	ActivityType  string  `gorm:"size:100;index" json:"activity_type"`
	IncludedItems string  `gorm:"type:text" json:"included_items"`
	OptionalAddons string `gorm:"type:text" json:"optional_addons"`
	Images        string  `gorm:"type:text" json:"images"` // JSON array of URLs
	Status        string  `gorm:"size:20;not null;default:'active';index" json:"status"` // active | inactive

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Provider User `gorm:"foreignKey:ProviderID" json:"-"`
}

func (Trip) TableName() string { return "trips" }
