package downloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/denisAlshanov/ytscribe/internal/config"
	"github.com/denisAlshanov/ytscribe/internal/services/storage"
	"github.com/denisAlshanov/ytscribe/internal/services/ytdlp"
	"github.com/denisAlshanov/ytscribe/internal/utils"
)

const (
	DefaultAudioFilename = "extracted_audio.mp3"
	DefaultOutputPath    = "."
)

// MediaFetcher is the part of the yt-dlp client the downloader drives.
type MediaFetcher interface {
	ExtractAudio(ctx context.Context, opts ytdlp.AudioOptions) (*ytdlp.Result, error)
	DownloadBest(ctx context.Context, opts ytdlp.VideoOptions) (*ytdlp.Result, error)
}

type AudioRequest struct {
	URL            string
	OutputFilename string
	FFmpegLocation string
}

type VideoRequest struct {
	URL        string
	OutputPath string
	FFmpegPath string
}

type DownloadResult struct {
	Message  string
	FilePath string
	// Location is the s3:// URI of the exported copy, empty without storage.
	Location string
}

type Downloader struct {
	fetcher MediaFetcher
	storage storage.StorageInterface
	config  *config.DownloadConfig
	prefix  string
}

// NewDownloader wires the fetcher and an optional object store (nil disables export).
func NewDownloader(fetcher MediaFetcher, store storage.StorageInterface, cfg *config.DownloadConfig, prefix string) *Downloader {
	return &Downloader{
		fetcher: fetcher,
		storage: store,
		config:  cfg,
		prefix:  prefix,
	}
}

// DownloadAudio fetches the best audio of a single video as a 320k MP3.
func (d *Downloader) DownloadAudio(ctx context.Context, req AudioRequest) (*DownloadResult, error) {
	output := req.OutputFilename
	if strings.TrimSpace(output) == "" {
		output = DefaultAudioFilename
	}

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	utils.LogInfo(ctx, "Downloading audio", utils.Fields{"url": req.URL, "output": output})
	res, err := d.fetcher.ExtractAudio(ctx, ytdlp.AudioOptions{
		URL:            req.URL,
		Output:         output,
		FFmpegLocation: d.ffmpeg(req.FFmpegLocation),
		OnProgress:     progressLogger(ctx, req.URL),
	})
	if err != nil {
		utils.LogError(ctx, "Audio download failed", err, utils.Fields{"url": req.URL})
		return nil, utils.NewDownloadError(err)
	}
	utils.LogInfo(ctx, "Downloaded file", utils.Fields{"url": req.URL, "file": res.FilePath})

	result := &DownloadResult{
		Message:  fmt.Sprintf("Audio downloaded and converted to MP3: %s", output),
		FilePath: pathOr(res.FilePath, output),
	}
	if err := d.export(ctx, result, req.URL, "audio"); err != nil {
		return nil, err
	}
	return result, nil
}

// DownloadVideo fetches the best quality video muxed to MP4.
func (d *Downloader) DownloadVideo(ctx context.Context, req VideoRequest) (*DownloadResult, error) {
	outputPath := req.OutputPath
	if strings.TrimSpace(outputPath) == "" {
		outputPath = DefaultOutputPath
	}

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	utils.LogInfo(ctx, "Downloading video", utils.Fields{"url": req.URL, "output_path": outputPath})
	res, err := d.fetcher.DownloadBest(ctx, ytdlp.VideoOptions{
		URL:            req.URL,
		OutputDir:      outputPath,
		FFmpegLocation: d.ffmpeg(req.FFmpegPath),
		OnProgress:     progressLogger(ctx, req.URL),
	})
	if err != nil {
		utils.LogError(ctx, "Video download failed", err, utils.Fields{"url": req.URL})
		return nil, utils.NewDownloadError(err)
	}
	utils.LogInfo(ctx, "Downloaded file", utils.Fields{"url": req.URL, "file": res.FilePath})

	result := &DownloadResult{
		Message:  fmt.Sprintf("Video downloaded as %s.mp4", ytdlp.VideoBaseName),
		FilePath: pathOr(res.FilePath, filepath.Join(outputPath, ytdlp.VideoBaseName+".mp4")),
	}
	if err := d.export(ctx, result, req.URL, "video"); err != nil {
		return nil, err
	}
	return result, nil
}

func (d *Downloader) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.config == nil || d.config.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d.config.Timeout)
}

// ffmpeg prefers the request's location over the configured one.
func (d *Downloader) ffmpeg(requested string) string {
	if requested != "" {
		return requested
	}
	if d.config != nil {
		return d.config.FFmpegLocation
	}
	return ""
}

// export copies the produced file to object storage when one is configured.
func (d *Downloader) export(ctx context.Context, result *DownloadResult, sourceURL, kind string) error {
	if d.storage == nil {
		return nil
	}

	file, err := os.Open(result.FilePath)
	if err != nil {
		return utils.NewStorageError(fmt.Errorf("failed to open downloaded file: %w", err))
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return utils.NewStorageError(fmt.Errorf("failed to stat downloaded file: %w", err))
	}

	contentType := "application/octet-stream"
	if mt, err := mimetype.DetectFile(result.FilePath); err == nil {
		contentType = mt.String()
	}

	key := storage.ObjectKey(d.prefix, result.FilePath)
	metadata := map[string]string{
		"source_url": sourceURL,
		"kind":       kind,
		"file_name":  filepath.Base(result.FilePath),
		"platform":   "youtube",
	}

	if err := d.storage.UploadWithMetadata(ctx, key, file, info.Size(), contentType, metadata); err != nil {
		utils.LogError(ctx, "Failed to export download", err, utils.Fields{"key": key})
		d.discard(ctx, key)
		return utils.NewStorageError(err)
	}

	exists, err := d.storage.Exists(ctx, key)
	if err != nil {
		return utils.NewStorageError(fmt.Errorf("failed to verify exported object: %w", err))
	}
	if !exists {
		return utils.NewStorageError(fmt.Errorf("exported object %s not found after upload", key))
	}

	result.Location = storage.Location(d.storage.BucketName(), key)
	utils.LogInfo(ctx, "Exported download", utils.Fields{
		"location":     result.Location,
		"size":         info.Size(),
		"content_type": contentType,
	})
	return nil
}

// discard removes whatever a failed upload left under key. The key is unique
// to this export, so nothing else can be removed.
func (d *Downloader) discard(ctx context.Context, key string) {
	// The request context may be the reason the upload failed.
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()

	if err := d.storage.Delete(cleanupCtx, key); err != nil {
		utils.LogWarn(ctx, "Failed to remove partial export", utils.Fields{"key": key, "error": err.Error()})
	}
}

// progressLogger reports download progress the way yt-dlp's hooks do:
// a percentage while downloading and a note when a stream finishes.
func progressLogger(ctx context.Context, url string) func(ytdlp.Progress) {
	return func(p ytdlp.Progress) {
		if p.Finished() {
			utils.LogInfo(ctx, "Download complete", utils.Fields{"url": url})
			return
		}
		if pct, ok := p.Percent(); ok {
			utils.LogInfo(ctx, fmt.Sprintf("Downloading: %.1f%%", pct), utils.Fields{"url": url})
		}
	}
}

func pathOr(path, fallback string) string {
	if path != "" {
		return path
	}
	return fallback
}
