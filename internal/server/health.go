package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse is the body returned by the health endpoints.
type HealthResponse struct {
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
	Service      string    `json:"service"`
	Version      string    `json:"version"`
	ChatProvider string    `json:"chat_provider,omitempty"`
}

// HealthHandler reports service liveness.
type HealthHandler struct {
	serviceName  string
	version      string
	chatProvider string
}

// NewHealthHandler creates a health handler for the named service.
func NewHealthHandler(serviceName, version, chatProvider string) *HealthHandler {
	return &HealthHandler{
		serviceName:  serviceName,
		version:      version,
		chatProvider: chatProvider,
	}
}

// HealthCheck handles GET /health and GET /healthz.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:       "healthy",
		Timestamp:    time.Now().UTC(),
		Service:      h.serviceName,
		Version:      h.version,
		ChatProvider: h.chatProvider,
	})
}

// RegisterRoutes mounts the health endpoints on r.
func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
