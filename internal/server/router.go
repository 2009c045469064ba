package server

import (
	"net/http"
	"time"

	"room-designer/backend/internal/config"
	configapp "room-designer/backend/internal/features/config/application"
	config_http "room-designer/backend/internal/features/config/presentation/http"
	designapp "room-designer/backend/internal/features/design/application"
	design_http "room-designer/backend/internal/features/design/presentation/http"
	"room-designer/backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterDeps carries everything the HTTP layer needs.
type RouterDeps struct {
	ServiceName   string
	Version       string
	ChatProvider  string
	Server        config.ServerConfig
	DesignService designapp.DesignService
	ConfigService configapp.ConfigService
}

// BuildRouter wires middleware and routes onto a new gin engine.
func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(corsConfig(dep.Server)))
	r.Use(middleware.RequestID())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	NewHealthHandler(dep.ServiceName, dep.Version, dep.ChatProvider).RegisterRoutes(r)

	design_http.NewDesignHandler(dep.DesignService, dep.ConfigService).RegisterRoutes(r)

	if dep.ConfigService != nil {
		config_http.NewAppConfigHandler(dep.ConfigService).RegisterRoutes(r.Group("/api/config"))
	}

	return r
}

func corsConfig(s config.ServerConfig) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		AllowHeaders:  []string{"*"},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(s.AllowOrigins) == 0 || s.AllowsAllOrigins() {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = s.AllowOrigins
	}
	return cfg
}
