package http

import (
	"log"
	"net/http"

	"room-designer/backend/internal/features/config/application"
	configdomain "room-designer/backend/internal/features/config/domain"
	designapp "room-designer/backend/internal/features/design/application"
	"room-designer/backend/internal/features/design/domain"
	"room-designer/backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

const errorPrefix = "Error generating design: "

// designRequestBody mirrors domain.DesignRequest with pointers so the binder
// can tell a missing field from a zero value.
type designRequestBody struct {
	Length    *float64 `json:"length" binding:"required"`
	Breadth   *float64 `json:"breadth" binding:"required"`
	Aesthetic *string  `json:"aesthetic" binding:"required"`
	Furniture *string  `json:"furniture" binding:"required"`
	Prompt    *string  `json:"prompt" binding:"required"`
}

func (b designRequestBody) toDomain() *domain.DesignRequest {
	return &domain.DesignRequest{
		Length:    *b.Length,
		Breadth:   *b.Breadth,
		Aesthetic: *b.Aesthetic,
		Furniture: *b.Furniture,
		Prompt:    *b.Prompt,
	}
}

// DesignHandler holds the design service and config service.
type DesignHandler struct {
	designService designapp.DesignService
	configService application.ConfigService
}

// NewDesignHandler creates a new DesignHandler.
func NewDesignHandler(designService designapp.DesignService, configService application.ConfigService) *DesignHandler {
	return &DesignHandler{
		designService: designService,
		configService: configService,
	}
}

// CreateDesignHandler handles POST /design: suggestions first, then the
// layout image. Any failure after binding is answered with a single 500.
func (h *DesignHandler) CreateDesignHandler(c *gin.Context) {
	var body designRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req := body.toDomain()

	prompts, err := h.loadPrompts()
	if err != nil {
		h.fail(c, err)
		return
	}

	resp, err := h.designService.CreateDesign(c.Request.Context(), req, prompts)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *DesignHandler) loadPrompts() (*configdomain.AppConfig, error) {
	if h.configService == nil {
		return configdomain.DefaultAppConfig(), nil
	}
	return h.configService.GetConfig()
}

func (h *DesignHandler) fail(c *gin.Context, err error) {
	log.Printf("[ERROR] request_id=%s %v\n", middleware.GetRequestID(c.Request.Context()), err)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": errorPrefix + err.Error()})
}

// RegisterRoutes mounts the design endpoint on r.
func (h *DesignHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/design", h.CreateDesignHandler)
}
