package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"careervault-backend/internal/shared/server/respond"
)

const userIDKey = "userId"

// Auth requires a guest identity header and stores it in context.
// Account auth is handled by an upstream gateway; this service only needs a
// stable per-caller identity for quota tracking and history ownership.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		path := c.Request.URL.Path
		if path == "/metrics" || path == "/api/v1/health" {
			c.Next()
			return
		}

		guestID := strings.TrimSpace(c.GetHeader("X-Guest-Id"))
		if guestID == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
			return
		}

		c.Set(userIDKey, "guest:"+guestID)
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by the auth middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
