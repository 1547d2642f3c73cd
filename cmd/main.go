// Package main provides the entry point for the YouTube transcript service.
// @title YouTube Transcript Service API
// @version 1.0
// @description Turns YouTube videos and playlists into transcript documents and downloads media with yt-dlp.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/denisAlshanov/ytscribe/docs" // Import for swagger docs
	"github.com/denisAlshanov/ytscribe/internal/api/handlers"
	"github.com/denisAlshanov/ytscribe/internal/api/router"
	"github.com/denisAlshanov/ytscribe/internal/config"
	"github.com/denisAlshanov/ytscribe/internal/services/downloader"
	"github.com/denisAlshanov/ytscribe/internal/services/storage"
	"github.com/denisAlshanov/ytscribe/internal/services/transcript"
	"github.com/denisAlshanov/ytscribe/internal/services/youtube"
	"github.com/denisAlshanov/ytscribe/internal/services/ytdlp"
	"github.com/denisAlshanov/ytscribe/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	utils.ConfigureLogger(cfg.Log.Level)
	logger := utils.GetLogger()
	logger.Info("Starting YouTube transcript service")

	// Transcript pipeline
	youtubeClient := youtube.NewClient(cfg.YouTube.HTTPTimeout)
	resolver := transcript.NewResolver(youtubeClient, youtubeClient,
		transcript.WithWorkers(cfg.Transcript.Workers),
		transcript.WithTimeout(cfg.Transcript.Timeout),
	)

	// Optional S3 export of downloads
	store, err := storage.NewStorage(&cfg.S3)
	if err != nil {
		logger.Fatalf("Failed to initialize storage: %v", err)
	}

	ytdlpClient := ytdlp.New(cfg.Download.YTDLPPath)
	if err := ytdlpClient.Available(); err != nil {
		logger.Warnf("yt-dlp unavailable, download endpoints will fail: %v", err)
	} else if version, err := ytdlpClient.Version(context.Background()); err == nil {
		logger.WithField("version", version).Info("Found yt-dlp")
	}
	downloaderService := downloader.NewDownloader(ytdlpClient, store, &cfg.Download, cfg.S3.Prefix)

	// Initialize handlers
	documentHandler := handlers.NewDocumentHandler(resolver)
	downloadHandler := handlers.NewDownloadHandler(downloaderService)
	healthHandler := handlers.NewHealthHandler(ytdlpClient, store)

	r := router.NewRouter(cfg, documentHandler, downloadHandler, healthHandler)
	srv := r.Server()

	go func() {
		logger.Infof("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server shutdown complete")
}
