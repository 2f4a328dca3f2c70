package models

import "time"

// Image is a standalone media record. Rooms reference it as main image and
// through the room_images join table.
type Image struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Src         string    `gorm:"size:500" json:"src"`
	Alt         string    `gorm:"size:255" json:"alt"`
	Type        string    `gorm:"size:50;index" json:"type"` // hero, gallery, thumbnail, parallax, popup
	Category    *string   `gorm:"size:100;index" json:"category"`
	Width       *int      `json:"width"`
	Height      *int      `json:"height"`
	Lazy        bool      `gorm:"default:false" json:"lazy"`
	Responsive  bool      `gorm:"default:true" json:"responsive"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Image) TableName() string { return "images" }
