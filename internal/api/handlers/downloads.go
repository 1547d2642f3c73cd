package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/ytscribe/internal/models"
	"github.com/denisAlshanov/ytscribe/internal/services/downloader"
	"github.com/denisAlshanov/ytscribe/internal/utils"
)

// MediaDownloader fetches audio or video of a YouTube URL.
type MediaDownloader interface {
	DownloadAudio(ctx context.Context, req downloader.AudioRequest) (*downloader.DownloadResult, error)
	DownloadVideo(ctx context.Context, req downloader.VideoRequest) (*downloader.DownloadResult, error)
}

type DownloadHandler struct {
	downloader MediaDownloader
}

func NewDownloadHandler(d MediaDownloader) *DownloadHandler {
	return &DownloadHandler{
		downloader: d,
	}
}

// DownloadAudio godoc
// @Summary Download the best audio stream as MP3
// @Description Downloads the best audio stream of a single video with yt-dlp and converts it to a 320k MP3.
// @Tags downloads
// @Accept json
// @Produce json
// @Param request body models.AudioDownloadRequest true "Audio download options"
// @Success 200 {object} models.DownloadResponse
// @Failure 422 {object} models.ErrorDetail
// @Failure 500 {object} models.ErrorDetail
// @Router /download-audio/ [post]
func (h *DownloadHandler) DownloadAudio(c *gin.Context) {
	var req models.AudioDownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorDetail{Detail: err.Error()})
		return
	}
	if req.YouTubeURL == nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorDetail{Detail: models.MissingFieldDetail("youtube_url")})
		return
	}

	res, err := h.downloader.DownloadAudio(c.Request.Context(), downloader.AudioRequest{
		URL:            *req.YouTubeURL,
		OutputFilename: req.OutputFilename,
		FFmpegLocation: req.FFmpegLocation,
	})
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, models.DownloadResponse{Message: res.Message, Location: res.Location})
}

// DownloadVideo godoc
// @Summary Download the highest quality video
// @Description Downloads the best MP4 video and M4A audio with yt-dlp and muxes them into downloaded_video.mp4 under output_path.
// @Tags downloads
// @Accept json
// @Produce json
// @Param request body models.VideoDownloadRequest true "Video download options"
// @Success 200 {object} models.DownloadResponse
// @Failure 422 {object} models.ErrorDetail
// @Failure 500 {object} models.ErrorDetail
// @Router /download-video/ [post]
func (h *DownloadHandler) DownloadVideo(c *gin.Context) {
	var req models.VideoDownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorDetail{Detail: err.Error()})
		return
	}
	if req.YouTubeURL == nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorDetail{Detail: models.MissingFieldDetail("youtube_url")})
		return
	}

	res, err := h.downloader.DownloadVideo(c.Request.Context(), downloader.VideoRequest{
		URL:        *req.YouTubeURL,
		OutputPath: req.OutputPath,
		FFmpegPath: req.FFmpegPath,
	})
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, models.DownloadResponse{Message: res.Message, Location: res.Location})
}

func (h *DownloadHandler) errorResponse(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if appErr, ok := utils.AsAppError(err); ok && appErr.StatusCode != 0 {
		status = appErr.StatusCode
	}
	c.JSON(status, models.ErrorDetail{Detail: err.Error()})
}
