// Package api provides the HTTP/JSON surface of aquamon: registration,
// login, and the authenticated aquarium, fish, category, and water-data
// endpoints.
package api

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"aquamon.dev/aquamon/internal/auth"
	"aquamon.dev/aquamon/pkg/metrics"
)

// Handlers bundles the dependencies shared by all request handlers. The
// database handle is constructed once at startup and injected; handlers
// never reach for ambient globals.
type Handlers struct {
	logger          *slog.Logger
	db              *gorm.DB
	tokens          *auth.TokenManager
	metrics         *metrics.APIMetrics // Optional metrics
	chartWindowDays int
}

// HandlersConfig holds the configuration for Handlers.
type HandlersConfig struct {
	Logger *slog.Logger
	DB     *gorm.DB
	Tokens *auth.TokenManager
	// Metrics is the optional Prometheus collector.
	Metrics *metrics.APIMetrics
	// ChartWindowDays bounds the trailing window of the chart endpoint.
	ChartWindowDays int
}

const defaultChartWindowDays = 9

// NewHandlers creates a Handlers instance.
func NewHandlers(cfg *HandlersConfig) (*Handlers, error) {
	if cfg == nil {
		return nil, errors.New("handlers config cannot be nil")
	}

	if cfg.Logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database cannot be nil")
	}

	if cfg.Tokens == nil {
		return nil, errors.New("token manager cannot be nil")
	}

	windowDays := cfg.ChartWindowDays
	if windowDays <= 0 {
		windowDays = defaultChartWindowDays
	}

	return &Handlers{
		logger:          cfg.Logger,
		db:              cfg.DB,
		tokens:          cfg.Tokens,
		metrics:         cfg.Metrics,
		chartWindowDays: windowDays,
	}, nil
}

// handleProtected is the identity echo endpoint used by clients to probe
// token validity.
func (h *Handlers) handleProtected(c *gin.Context) {
	c.JSON(200, gin.H{"logged_in_as": principal(c)})
}

// handleHealth serves the health check endpoint.
func (h *Handlers) handleHealth(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
