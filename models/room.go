package models

import "time"

type Room struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	RoomNumber  string `gorm:"column:room_number;uniqueIndex;size:50" json:"roomNumber"`
	RoomTypeID  uint   `gorm:"column:room_type_id;index" json:"roomTypeId"`
	Name        string `gorm:"size:255" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	Floor       *string `gorm:"size:10" json:"floor"`
	ViewType    *string `gorm:"column:view_type;size:100" json:"viewType"`

	PricePerNight float64  `gorm:"column:price_per_night" json:"pricePerNight"`
	MaxGuests     int      `gorm:"column:max_guests;default:2" json:"maxGuests"`
	Bedrooms      int      `gorm:"default:1" json:"bedrooms"`
	Bathrooms     int      `gorm:"default:1" json:"bathrooms"`
	SizeSqm       *float64 `gorm:"column:size_sqm" json:"sizeSqm"`
	BedType       *string  `gorm:"column:bed_type;size:100" json:"bedType"`

	MainImageID *uint `gorm:"column:main_image_id" json:"mainImageId"`

	Status       string `gorm:"size:50;default:available;index" json:"status"` // available, occupied, maintenance, cleaning
	IsActive     bool   `gorm:"column:is_active;default:true" json:"isActive"`
	CheckInTime  string `gorm:"column:check_in_time;size:20;default:14:00:00" json:"checkInTime"`
	CheckOutTime string `gorm:"column:check_out_time;size:20;default:12:00:00" json:"checkOutTime"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Room) TableName() string { return "rooms" }

// RoomDetail is a Room joined with its room type and main image, the shape
// every room read path returns.
type RoomDetail struct {
	Room                `gorm:"embedded"`
	RoomTypeName        *string `gorm:"column:room_type_name" json:"roomTypeName"`
	RoomTypeDescription *string `gorm:"column:room_type_description" json:"roomTypeDescription"`
	MainImageSrc        *string `gorm:"column:main_image_src" json:"mainImageSrc"`
	MainImageAlt        *string `gorm:"column:main_image_alt" json:"mainImageAlt"`
}
