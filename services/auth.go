package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"cms-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SessionTimeout is the idle window for cookie sessions. Note the contrast
// with the header-blob gate: that one measures a fixed window from issuance,
// this one slides on every check.
const SessionTimeout = 30 * time.Minute

type session struct {
	userID       uint
	username     string
	lastActivity time.Time
}

// AuthService implements the cookie-session login flow against admin_users.
// Sessions are process-local; scaling out needs an external session store.
type AuthService struct {
	db *gorm.DB

	mu       sync.Mutex
	sessions map[string]*session
	now      func() time.Time
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		db:       db,
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

func generateTokenHex(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Login verifies the password against the stored bcrypt hash and starts a
// session. Returns the opaque session id.
func (s *AuthService) Login(username, password string) (string, error) {
	var user models.AdminUser
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	now := s.now()
	if err := s.db.Model(&user).Update("last_login", now).Error; err != nil {
		return "", err
	}

	id, err := generateTokenHex(32)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.sessions[id] = &session{userID: user.ID, username: user.Username, lastActivity: now}
	s.mu.Unlock()

	return id, nil
}

// Check reports whether the session is still live. An idle session past the
// timeout is destroyed; a live one has its activity clock refreshed.
func (s *AuthService) Check(sessionID string) (string, bool) {
	if sessionID == "" {
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return "", false
	}
	now := s.now()
	if now.Sub(sess.lastActivity) > SessionTimeout {
		delete(s.sessions, sessionID)
		return "", false
	}
	sess.lastActivity = now
	return sess.username, true
}

// Logout destroys the session unconditionally.
func (s *AuthService) Logout(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}
