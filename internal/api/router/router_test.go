package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/denisAlshanov/ytscribe/internal/api/handlers"
	"github.com/denisAlshanov/ytscribe/internal/config"
	"github.com/denisAlshanov/ytscribe/internal/models"
	"github.com/denisAlshanov/ytscribe/internal/services/downloader"
)

type stubResolver struct{}

func (stubResolver) ResolveURL(ctx context.Context, rawURL string) ([]models.Document, error) {
	return []models.Document{models.NewDocument("hi", rawURL)}, nil
}

type stubDownloader struct{}

func (stubDownloader) DownloadAudio(ctx context.Context, req downloader.AudioRequest) (*downloader.DownloadResult, error) {
	return &downloader.DownloadResult{Message: "audio"}, nil
}

func (stubDownloader) DownloadVideo(ctx context.Context, req downloader.VideoRequest) (*downloader.DownloadResult, error) {
	return &downloader.DownloadResult{Message: "video"}, nil
}

type stubTool struct{}

func (stubTool) Available() error { return nil }

func newTestRouter() *Router {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Server: config.ServerConfig{Host: "127.0.0.1", Port: "9090"}}
	return NewRouter(cfg,
		handlers.NewDocumentHandler(stubResolver{}),
		handlers.NewDownloadHandler(stubDownloader{}),
		handlers.NewHealthHandler(stubTool{}, nil),
	)
}

func TestRoutes(t *testing.T) {
	r := newTestRouter()

	testCases := []struct {
		method string
		path   string
		body   string
		want   string
	}{
		{method: http.MethodGet, path: "/healthcheck", want: `"status":"ok"`},
		{method: http.MethodGet, path: "/live", want: `"alive":true`},
		{method: http.MethodGet, path: "/ready", want: `"ready":true`},
		{method: http.MethodPost, path: "/process-url/", body: `{"url":"https://youtu.be/abc"}`, want: `"page_content":"hi"`},
		{method: http.MethodPost, path: "/download-audio/", body: `{"youtube_url":"https://youtu.be/abc"}`, want: `"message":"audio"`},
		{method: http.MethodPost, path: "/download-video/", body: `{"youtube_url":"https://youtu.be/abc"}`, want: `"message":"video"`},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			r.Engine().ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tc.want)
			assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestCorrelationIDIsEchoed(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set("X-Correlation-ID", "corr-123")
	r.Engine().ServeHTTP(w, req)

	assert.Equal(t, "corr-123", w.Header().Get("X-Correlation-ID"))
}

func TestServerAddr(t *testing.T) {
	srv := newTestRouter().Server()
	assert.Equal(t, "127.0.0.1:9090", srv.Addr)
	assert.NotNil(t, srv.Handler)
}
