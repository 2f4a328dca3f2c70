package controllers

import (
	"errors"
	"net/http"
	"strings"

	"cms-backend/services"
	"cms-backend/utils"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "cms_session"

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthController exposes the cookie-session login flow: POST logs in, GET
// reports session status, DELETE logs out.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "Username and password are required", nil)
		return
	}

	sessionID, err := ac.auth.Login(username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", nil)
			return
		}
		respondError(c, err)
		return
	}

	c.SetCookie(sessionCookie, sessionID, int(services.SessionTimeout.Seconds()), "/", "", false, true)
	utils.JSONSuccess(c, http.StatusOK, "Login successful", gin.H{
		"loggedIn": true,
		"username": username,
	})
}

func (ac *AuthController) Status(c *gin.Context) {
	sessionID, _ := c.Cookie(sessionCookie)
	if username, ok := ac.auth.Check(sessionID); ok {
		utils.JSONSuccess(c, http.StatusOK, "Success", gin.H{
			"loggedIn": true,
			"username": username,
		})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Success", gin.H{"loggedIn": false})
}

func (ac *AuthController) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(sessionCookie); err == nil {
		ac.auth.Logout(sessionID)
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	utils.JSONSuccess(c, http.StatusOK, "Logged out successfully", nil)
}
