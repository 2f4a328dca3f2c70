package services

import (
	"testing"

	"cms-backend/config"
	"cms-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps every statement on the same in-memory
	// database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func testActor() *Actor {
	return &Actor{ID: 1, Username: "admin", Role: "admin"}
}

func testMeta() RequestMeta {
	return RequestMeta{IP: "127.0.0.1", UserAgent: "test-agent"}
}

func countLogs(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.ActivityLog{}).Count(&count).Error)
	return count
}

func lastLog(t *testing.T, db *gorm.DB) models.ActivityLog {
	t.Helper()
	var entry models.ActivityLog
	require.NoError(t, db.Order("id DESC").First(&entry).Error)
	return entry
}
