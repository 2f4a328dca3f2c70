package models

import "time"

// RoomType cannot be deleted while any Room still references it; the room
// type service enforces that before issuing the delete.
type RoomType struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	BasePrice   float64   `gorm:"column:base_price" json:"basePrice"`
	MaxGuests   int       `gorm:"column:max_guests" json:"maxGuests"`
	SizeSqm     *float64  `gorm:"column:size_sqm" json:"sizeSqm"`
	IsActive    bool      `gorm:"column:is_active;default:true" json:"isActive"`
	SortOrder   int       `gorm:"column:sort_order;default:0" json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (RoomType) TableName() string { return "room_types" }
