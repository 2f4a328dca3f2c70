package models

import "time"

type AdminUser struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"uniqueIndex;size:150" json:"username"`
	PasswordHash string     `gorm:"column:password_hash;size:255" json:"-"`
	LastLogin    *time.Time `gorm:"column:last_login" json:"lastLogin"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func (AdminUser) TableName() string { return "admin_users" }
