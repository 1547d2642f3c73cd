package router

import (
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/denisAlshanov/ytscribe/internal/api/handlers"
	"github.com/denisAlshanov/ytscribe/internal/api/middleware"
	"github.com/denisAlshanov/ytscribe/internal/config"
)

type Router struct {
	engine *gin.Engine
	config *config.Config
}

func NewRouter(cfg *config.Config, documentHandler *handlers.DocumentHandler, downloadHandler *handlers.DownloadHandler, healthHandler *handlers.HealthHandler) *Router {
	// Set Gin mode
	if cfg.Server.Host == "0.0.0.0" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.CorrelationIDMiddleware())

	health := engine.Group("/")
	{
		health.GET("/healthcheck", healthHandler.Healthcheck)
		health.GET("/ready", healthHandler.Readiness)
		health.GET("/live", healthHandler.Liveness)
	}

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.POST("/process-url/", documentHandler.ProcessURL)
	engine.POST("/download-audio/", downloadHandler.DownloadAudio)
	engine.POST("/download-video/", downloadHandler.DownloadVideo)

	return &Router{
		engine: engine,
		config: cfg,
	}
}

// Server builds the HTTP server so the caller can shut it down gracefully.
func (r *Router) Server() *http.Server {
	return &http.Server{
		Addr:    net.JoinHostPort(r.config.Server.Host, r.config.Server.Port),
		Handler: r.engine,
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
