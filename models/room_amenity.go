package models

import "time"

type RoomAmenity struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	RoomID        uint      `gorm:"column:room_id;index" json:"roomId"`
	AmenityName   string    `gorm:"column:amenity_name;size:255" json:"amenityName"`
	AmenityType   string    `gorm:"column:amenity_type;size:100;default:comfort" json:"amenityType"`
	Description   *string   `gorm:"type:text" json:"description"`
	Icon          *string   `gorm:"size:100" json:"icon"`
	IsHighlighted bool      `gorm:"column:is_highlighted;default:false" json:"isHighlighted"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (RoomAmenity) TableName() string { return "room_amenities" }
