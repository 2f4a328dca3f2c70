package controllers

import (
	"net/http"
	"time"

	"cms-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const apiVersion = "1.0.0"

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

func (hc *HealthController) Health(c *gin.Context) {
	healthy := false
	if sqlDB, err := hc.db.DB(); err == nil {
		healthy = sqlDB.Ping() == nil
	}

	status := "healthy"
	database := "connected"
	if !healthy {
		status = "unhealthy"
		database = "disconnected"
	}

	utils.JSONSuccess(c, http.StatusOK, "API is "+status, gin.H{
		"status":    status,
		"database":  database,
		"version":   apiVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
