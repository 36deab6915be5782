package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing database is reachable
type Pinger interface {
	Ping() error
}

// SystemHandler handles health and readiness endpoints
type SystemHandler struct {
	BaseHandler
	db      Pinger
	version string
	started time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger, version string) *SystemHandler {
	return &SystemHandler{
		db:      db,
		version: version,
		started: time.Now(),
	}
}

// RegisterRoutes registers the system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/ready", h.Ready)
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// Health reports process liveness
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, HealthResponse{
		Status:  "ok",
		Version: h.version,
		Uptime:  time.Since(h.started).Round(time.Second).String(),
	})
}

// Ready reports whether the service can reach its database
func (h *SystemHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		h.Error(c, http.StatusServiceUnavailable, "ERR_NOT_READY", "Database is not reachable")
		return
	}
	h.Success(c, gin.H{"status": "ready"})
}
