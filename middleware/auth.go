package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"cms-backend/services"
	"cms-backend/utils"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// sessionWindow is a fixed window measured from the blob's issuance
// timestamp; unlike the cookie-session flow it is never renewed here.
const sessionWindow = 30 * time.Minute

type sessionBlob struct {
	Authenticated bool   `json:"authenticated"`
	Timestamp     int64  `json:"timestamp"` // epoch millis
	Username      string `json:"username"`
}

// RequireAuth gates every mutating and admin-only endpoint. Callers present
// either the shared API key in X-API-Key or a session blob in
// X-Session-Data. CORS pre-flight requests pass through untouched.
func RequireAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		if key := c.GetHeader("X-API-Key"); key != "" {
			if apiKey != "" && key == apiKey {
				// The API-key path is not tied to a stored identity;
				// audit entries attribute it to the default admin.
				c.Set(actorKey, services.Actor{ID: 1, Username: "admin", Role: "admin"})
				c.Next()
				return
			}
			abortUnauthorized(c)
			return
		}

		if raw := c.GetHeader("X-Session-Data"); raw != "" {
			var blob sessionBlob
			if err := json.Unmarshal([]byte(raw), &blob); err == nil && validSession(blob) {
				username := blob.Username
				if username == "" {
					username = "admin"
				}
				c.Set(actorKey, services.Actor{ID: 1, Username: username, Role: "admin"})
				c.Next()
				return
			}
		}

		abortUnauthorized(c)
	}
}

func validSession(blob sessionBlob) bool {
	if !blob.Authenticated {
		return false
	}
	issued := time.UnixMilli(blob.Timestamp)
	return time.Since(issued) <= sessionWindow
}

func abortUnauthorized(c *gin.Context) {
	utils.JSONError(c, http.StatusUnauthorized, "Authentication required", nil)
	c.Abort()
}

// ActorFromContext returns the identity set by RequireAuth, for audit
// logging.
func ActorFromContext(c *gin.Context) *services.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(services.Actor); ok {
			return &actor
		}
	}
	return nil
}
