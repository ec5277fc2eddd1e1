package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	jwtpkg "github.com/wortkiste/core/internal/pkg/jwt"
	"github.com/wortkiste/core/internal/pkg/response"
	sessionpkg "github.com/wortkiste/core/internal/pkg/session"
	"gorm.io/gorm"
)

const (
	ContextKeySID = "session_id"

	// CookieName carries the session token for browser clients; API
	// clients use the Authorization header instead.
	CookieName = "wk-token"
)

// Auth returns a middleware that enforces session-token authentication.
func Auth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := ValidateToken(db, extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeySID, sid)
		sessionpkg.Touch(db, sid)
		c.Next()
	}
}

// OptionalAuth marks the request authenticated if a valid token is present,
// but does not block it.
func OptionalAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sid, err := ValidateToken(db, extractToken(c)); err == nil {
			c.Set(ContextKeySID, sid)
			sessionpkg.Touch(db, sid)
		}
		c.Next()
	}
}

// ValidateToken validates a session JWT and returns the session id.
func ValidateToken(db *gorm.DB, rawToken string) (string, error) {
	token := NormalizeToken(rawToken)
	if token == "" {
		return "", errors.New("token is required")
	}

	claims, err := jwtpkg.Parse(token)
	if err != nil {
		return "", err
	}
	active, err := sessionpkg.IsActive(db, claims.SessionID)
	if err != nil {
		return "", err
	}
	if !active {
		return "", errors.New("session expired or revoked")
	}
	return claims.SessionID, nil
}

// CurrentSessionID extracts the authenticated session ID from context.
func CurrentSessionID(c *gin.Context) string {
	v, _ := c.Get(ContextKeySID)
	id, _ := v.(string)
	return id
}

// IsAuthenticated returns true if the request has a valid auth token.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentSessionID(c) != ""
}

func extractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		return NormalizeToken(auth)
	}
	if raw, err := c.Cookie(CookieName); err == nil && raw != "" {
		return NormalizeToken(raw)
	}
	return NormalizeToken(c.Query("token"))
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
