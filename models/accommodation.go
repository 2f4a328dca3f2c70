package models

import (
	"time"

	"gorm.io/datatypes"
)

type Accommodation struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"size:255" json:"name"`
	Description   *string        `gorm:"type:text" json:"description"`
	Type          string         `gorm:"size:50;index" json:"type"` // villa, room, suite
	MaxGuests     *int           `gorm:"column:max_guests" json:"maxGuests"`
	Bedrooms      *int           `json:"bedrooms"`
	Bathrooms     *int           `json:"bathrooms"`
	PricePerNight *float64       `gorm:"column:price_per_night" json:"pricePerNight"`
	ImageURL      *string        `gorm:"column:image_url;size:500" json:"imageUrl"`
	Amenities     datatypes.JSON `json:"amenities"`
	SortOrder     int            `gorm:"column:sort_order;default:0" json:"sortOrder"`
	IsActive      bool           `gorm:"column:is_active;default:true" json:"isActive"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func (Accommodation) TableName() string { return "accommodations" }
