package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLog is append-only: the application inserts rows and reads them
// back newest-first, never updates or deletes them.
type ActivityLog struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	LogTableName string         `gorm:"column:table_name;size:100;index" json:"tableName"`
	RecordID     string         `gorm:"column:record_id;size:100" json:"recordId"`
	Action       string         `gorm:"size:50" json:"action"` // CREATE, UPDATE, DELETE, BULK_UPDATE
	OldValues    datatypes.JSON `gorm:"column:old_values" json:"oldValues"`
	NewValues    datatypes.JSON `gorm:"column:new_values" json:"newValues"`
	AdminUserID  *uint          `gorm:"column:admin_user_id" json:"adminUserId"`
	IPAddress    *string        `gorm:"column:ip_address;size:64" json:"ipAddress"`
	UserAgent    *string        `gorm:"column:user_agent;size:500" json:"userAgent"`
	CreatedAt    time.Time      `json:"createdAt"`
}

func (ActivityLog) TableName() string { return "activity_log" }
