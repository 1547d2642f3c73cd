package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/ytscribe/internal/services/storage"
	"github.com/denisAlshanov/ytscribe/internal/utils"
)

// ToolChecker reports whether the external downloader binary can be run.
type ToolChecker interface {
	Available() error
}

type HealthHandler struct {
	tool    ToolChecker
	storage storage.StorageInterface
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ReadinessResponse struct {
	Ready     bool                    `json:"ready"`
	Timestamp string                  `json:"timestamp"`
	Checks    map[string]ServiceCheck `json:"checks"`
}

type ServiceCheck struct {
	Ready        bool   `json:"ready"`
	ResponseTime string `json:"response_time,omitempty"`
	Error        string `json:"error,omitempty"`
}

// NewHealthHandler accepts a nil storage when export is disabled.
func NewHealthHandler(tool ToolChecker, storage storage.StorageInterface) *HealthHandler {
	return &HealthHandler{
		tool:    tool,
		storage: storage,
	}
}

// Healthcheck godoc
// @Summary Health check endpoint
// @Description Reports that the service is up
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthcheck [get]
func (h *HealthHandler) Healthcheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Liveness godoc
// @Summary Liveness check endpoint
// @Description Check if the service is alive
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /live [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Readiness godoc
// @Summary Readiness check endpoint
// @Description Check that yt-dlp is runnable and, when configured, that the export bucket is reachable
// @Tags health
// @Produce json
// @Success 200 {object} ReadinessResponse
// @Failure 503 {object} ReadinessResponse
// @Router /ready [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx := c.Request.Context()

	response := ReadinessResponse{
		Ready:     true,
		Timestamp: time.Now().Format(time.RFC3339),
		Checks:    make(map[string]ServiceCheck),
	}

	response.Checks["yt-dlp"] = h.checkTool(ctx)
	if h.storage != nil {
		response.Checks["s3"] = h.checkStorage(ctx)
	}

	for _, check := range response.Checks {
		if !check.Ready {
			response.Ready = false
			break
		}
	}

	if !response.Ready {
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) checkTool(ctx context.Context) ServiceCheck {
	if h.tool == nil {
		return ServiceCheck{Ready: false, Error: "downloader not configured"}
	}
	if err := h.tool.Available(); err != nil {
		utils.LogError(ctx, "yt-dlp readiness check failed", err)
		return ServiceCheck{Ready: false, Error: err.Error()}
	}
	return ServiceCheck{Ready: true}
}

func (h *HealthHandler) checkStorage(ctx context.Context) ServiceCheck {
	start := time.Now()

	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := h.storage.Ping(checkCtx)
	responseTime := time.Since(start).String()

	if err != nil {
		utils.LogError(ctx, "S3 readiness check failed", err)
		return ServiceCheck{
			Ready:        false,
			ResponseTime: responseTime,
			Error:        err.Error(),
		}
	}

	return ServiceCheck{
		Ready:        true,
		ResponseTime: responseTime,
	}
}
