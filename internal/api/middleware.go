package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"aquamon.dev/aquamon/internal/store"
)

// principalKey is the gin context key holding the authenticated email.
const principalKey = "principal"

// principal returns the authenticated email set by RequireAuth.
func principal(c *gin.Context) string {
	return c.GetString(principalKey)
}

// RequireAuth verifies the bearer token and stores the asserted email on
// the request context. The authenticated identity is the sole source of
// truth for ownership; request bodies never override it.
func (h *Handlers) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if len(header) < 8 || !strings.EqualFold(header[:7], "Bearer ") {
			if h.metrics != nil {
				h.metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Missing Authorization Header"})
			return
		}

		email, err := h.tokens.Verify(header[7:])
		if err != nil {
			if h.metrics != nil {
				h.metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
			}
			h.logger.Debug("token verification failed", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Invalid or expired token"})
			return
		}

		c.Set(principalKey, email)
		c.Next()
	}
}

// currentUser resolves the authenticated principal to its user row.
func (h *Handlers) currentUser(c *gin.Context) (*store.User, error) {
	var user store.User
	err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", principal(c)).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// abortUnknownUser maps a failed principal lookup to a response. A valid
// token for a deleted account is an auth failure, anything else is a
// server error.
func (h *Handlers) abortUnknownUser(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Unknown user"})
		return
	}
	h.logger.Error("failed to resolve user", "error", err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": "Internal server error"})
}

// MetricsMiddleware records request counts, durations, and in-flight
// gauges per route.
func (h *Handlers) MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.metrics == nil {
			c.Next()
			return
		}

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		h.metrics.HTTPRequestsInFlight.WithLabelValues(path).Inc()
		start := time.Now()

		c.Next()

		h.metrics.HTTPRequestsInFlight.WithLabelValues(path).Dec()
		h.metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).
			Observe(time.Since(start).Seconds())
		h.metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
