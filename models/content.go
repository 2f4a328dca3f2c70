package models

import (
	"time"

	"gorm.io/datatypes"
)

// Flat content records managed by the generic CRUD engine.

type Button struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"size:255" json:"text"`
	URL       string    `gorm:"column:url;size:500" json:"url"`
	Style     string    `gorm:"size:50;default:primary" json:"style"`
	Icon      *string   `gorm:"size:100" json:"icon"`
	Target    string    `gorm:"size:20;default:_self" json:"target"`
	IsActive  bool      `gorm:"column:is_active;default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Button) TableName() string { return "buttons" }

type Popup struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"column:image_url;size:500" json:"imageUrl"`
	ButtonText  *string   `gorm:"column:button_text;size:255" json:"buttonText"`
	ButtonURL   *string   `gorm:"column:button_url;size:500" json:"buttonUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Popup) TableName() string { return "popup" }

type Parallax struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Title          string    `gorm:"size:255" json:"title"`
	Description    *string   `gorm:"type:text" json:"description"`
	ImageURL       string    `gorm:"column:image_url;size:500" json:"imageUrl"`
	OverlayOpacity float64   `gorm:"column:overlay_opacity;default:0.5" json:"overlayOpacity"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (Parallax) TableName() string { return "parallax" }

type Page struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	PageName        string         `gorm:"column:page_name;uniqueIndex;size:100" json:"pageName"`
	Title           string         `gorm:"size:255" json:"title"`
	Description     *string        `gorm:"type:text" json:"description"`
	MetaDescription *string        `gorm:"column:meta_description;type:text" json:"metaDescription"`
	Keywords        datatypes.JSON `json:"keywords"`
	IsActive        bool           `gorm:"column:is_active;default:true" json:"isActive"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

func (Page) TableName() string { return "pages" }
