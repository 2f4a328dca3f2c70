package models

import "time"

// RoomImage links a room to an image. At most one link per room may carry
// IsPrimary; the room image service clears the flag on siblings before
// setting a new primary.
type RoomImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    uint      `gorm:"column:room_id;uniqueIndex:idx_room_image" json:"roomId"`
	ImageID   uint      `gorm:"column:image_id;uniqueIndex:idx_room_image" json:"imageId"`
	SortOrder int       `gorm:"column:sort_order;default:0" json:"sortOrder"`
	IsPrimary bool      `gorm:"column:is_primary;default:false" json:"isPrimary"`
	CreatedAt time.Time `json:"createdAt"`
}

func (RoomImage) TableName() string { return "room_images" }

// RoomImageDetail joins the link row with the image it points to.
type RoomImageDetail struct {
	RoomImage   `gorm:"embedded"`
	Src         string  `json:"src"`
	Alt         string  `json:"alt"`
	Type        string  `json:"type"`
	Description *string `json:"description"`
}
