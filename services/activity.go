package services

import (
	"encoding/json"
	"log"

	"cms-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Actor is the minimal identity attached to audit entries.
type Actor struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// RequestMeta carries client metadata into the audit log.
type RequestMeta struct {
	IP        string
	UserAgent string
}

const (
	ActionCreate     = "CREATE"
	ActionUpdate     = "UPDATE"
	ActionDelete     = "DELETE"
	ActionBulkUpdate = "BULK_UPDATE"
)

// ActivityLogger appends one row per mutating operation, capturing before
// and after state. A logging failure never fails the request; it only goes
// to the process log.
type ActivityLogger struct {
	db *gorm.DB
}

func NewActivityLogger(db *gorm.DB) *ActivityLogger {
	return &ActivityLogger{db: db}
}

func toJSON(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("warning: activity log value marshal failed: %v", err)
		return nil
	}
	return datatypes.JSON(raw)
}

func (l *ActivityLogger) Log(table, recordID, action string, oldValues, newValues interface{}, actor *Actor, meta RequestMeta) {
	entry := models.ActivityLog{
		LogTableName: table,
		RecordID:     recordID,
		Action:       action,
		OldValues:    toJSON(oldValues),
		NewValues:    toJSON(newValues),
	}
	if actor != nil {
		id := actor.ID
		entry.AdminUserID = &id
	}
	if meta.IP != "" {
		ip := meta.IP
		entry.IPAddress = &ip
	}
	if meta.UserAgent != "" {
		ua := meta.UserAgent
		entry.UserAgent = &ua
	}

	if err := l.db.Create(&entry).Error; err != nil {
		log.Printf("warning: activity logging failed for %s/%s: %v", table, recordID, err)
	}
}
