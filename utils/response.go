package utils

import (
	"time"

	"github.com/gin-gonic/gin"
)

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func JSONSuccess(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, gin.H{
		"success":   true,
		"message":   message,
		"data":      data,
		"timestamp": timestamp(),
	})
}

func JSONError(c *gin.Context, code int, message string, details interface{}) {
	c.JSON(code, gin.H{
		"success":   false,
		"message":   message,
		"error":     details,
		"timestamp": timestamp(),
	})
}

func JSONNotFound(c *gin.Context, resource string) {
	JSONError(c, 404, resource+" not found", nil)
}

func JSONValidationError(c *gin.Context, errors map[string]string) {
	JSONError(c, 422, "Validation failed", errors)
}
