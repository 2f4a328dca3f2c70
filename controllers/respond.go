package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"cms-backend/middleware"
	"cms-backend/services"
	"cms-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the envelope. Store failures become
// an opaque 500 with the message surfaced, never a stack.
func respondError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	var nfErr *services.NotFoundError
	var cfErr *services.ConflictError

	switch {
	case errors.As(err, &vErr):
		utils.JSONValidationError(c, vErr.Fields)
	case errors.As(err, &nfErr):
		utils.JSONNotFound(c, nfErr.Resource)
	case errors.As(err, &cfErr):
		utils.JSONError(c, http.StatusBadRequest, cfErr.Message, nil)
	case errors.Is(err, services.ErrNoFields):
		utils.JSONError(c, http.StatusBadRequest, "No valid fields to update", nil)
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}

func requestMeta(c *gin.Context) services.RequestMeta {
	return services.RequestMeta{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

func actor(c *gin.Context) *services.Actor {
	return middleware.ActorFromContext(c)
}

// idParam parses the :id path segment.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Valid ID is required", nil)
		return 0, false
	}
	return uint(id), true
}

// numberField reads a numeric body field under any of the given keys.
func numberField(body map[string]interface{}, keys ...string) (float64, bool) {
	for _, key := range keys {
		if v, ok := body[key]; ok {
			if n, isNum := utils.AsNumber(v); isNum {
				return n, true
			}
		}
	}
	return 0, false
}

func bindBody(c *gin.Context) (map[string]interface{}, bool) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return nil, false
	}
	return body, true
}
