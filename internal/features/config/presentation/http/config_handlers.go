package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"room-designer/backend/internal/features/config/application"
	"room-designer/backend/internal/features/config/domain"
)

// AppConfigHandler holds the app config service.
type AppConfigHandler struct {
	configService application.ConfigService
}

// NewAppConfigHandler creates a new AppConfigHandler.
func NewAppConfigHandler(configService application.ConfigService) *AppConfigHandler {
	return &AppConfigHandler{
		configService: configService,
	}
}

// GetAppConfigHandler handles fetching the prompt and model configuration.
func (h *AppConfigHandler) GetAppConfigHandler(c *gin.Context) {
	appConfig, err := h.configService.GetConfig()
	if err != nil {
		log.Println("[ERROR] Failed to load app config:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load app config: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, appConfig)
}

// SaveAppConfigHandler handles saving the prompt and model configuration.
func (h *AppConfigHandler) SaveAppConfigHandler(c *gin.Context) {
	var appConfig domain.AppConfig
	if err := c.ShouldBindJSON(&appConfig); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.configService.UpdateConfig(&appConfig)
	if errors.Is(err, application.ErrInvalidConfig) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Println("[ERROR] Failed to save app config:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save app config: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "App config saved successfully", "config": saved})
}

// RegisterRoutes mounts the config endpoints on r.
func (h *AppConfigHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/app", h.GetAppConfigHandler)
	r.POST("/app", h.SaveAppConfigHandler)
}
