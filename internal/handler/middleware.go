package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"localmarket-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	userKey           = "user"
	sessionCookieName = "session_token"
)

// Gate interface for dependency injection
type Gate interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
	RequireRole(ctx context.Context, token string, roles ...models.Role) (*models.User, error)
}

// SessionToken reads the session token from "Authorization: Bearer <token>",
// falling back to the session cookie.
func SessionToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	token, err := c.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return token
}

// RequireUser aborts with 401 unless the request carries a valid session.
func RequireUser(gate Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := gate.Authenticate(c.Request.Context(), SessionToken(c))
		if err != nil {
			respondError(c, err)
			c.Abort()
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// RequireRole aborts unless the session's user holds one of roles.
func RequireRole(gate Gate, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := gate.RequireRole(c.Request.Context(), SessionToken(c), roles...)
		if err != nil {
			respondError(c, err)
			c.Abort()
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by RequireUser or RequireRole.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

// RequestLogger logs one line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}
