package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/ytscribe/internal/models"
	"github.com/denisAlshanov/ytscribe/internal/utils"
)

// URLResolver turns a YouTube URL into transcript documents.
type URLResolver interface {
	ResolveURL(ctx context.Context, rawURL string) ([]models.Document, error)
}

type DocumentHandler struct {
	resolver URLResolver
}

func NewDocumentHandler(resolver URLResolver) *DocumentHandler {
	return &DocumentHandler{
		resolver: resolver,
	}
}

// ProcessURL godoc
// @Summary Fetch transcripts of a YouTube video or playlist
// @Description Returns one document per video that has a transcript. English is preferred, then en-GB, then the first transcript listed. Failures are reported in the "error" field with status 200.
// @Tags documents
// @Accept json
// @Produce json
// @Param request body models.ProcessURLRequest true "YouTube video or playlist URL"
// @Success 200 {object} models.ProcessURLResponse
// @Success 200 {object} models.ProcessURLError
// @Failure 422 {object} models.ErrorDetail
// @Router /process-url/ [post]
func (h *DocumentHandler) ProcessURL(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.ProcessURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorDetail{Detail: err.Error()})
		return
	}
	if req.URL == nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorDetail{Detail: models.MissingFieldDetail("url")})
		return
	}
	url := *req.URL

	// An empty url is not malformed; it fails classification like any other.
	docs, err := h.resolver.ResolveURL(ctx, url)
	if err != nil {
		// Callers detect failure from the body, not the status code.
		utils.LogError(ctx, "Failed to process URL", err, utils.Fields{"url": url})
		c.JSON(http.StatusOK, models.ProcessURLError{Error: err.Error()})
		return
	}
	if docs == nil {
		docs = []models.Document{}
	}

	utils.LogInfo(ctx, "Processed URL", utils.Fields{
		"url":       url,
		"documents": len(docs),
	})
	c.JSON(http.StatusOK, models.ProcessURLResponse{Documents: docs})
}
