package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Log        LogConfig
	YouTube    YouTubeConfig
	Transcript TranscriptConfig
	Download   DownloadConfig
	S3         S3Config
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
}

type LogConfig struct {
	Level string
}

type YouTubeConfig struct {
	HTTPTimeout time.Duration
}

type TranscriptConfig struct {
	// Workers bounds the playlist fan-out; 1 resolves videos strictly in sequence.
	Workers int
	// Timeout applies to each video's resolution; zero disables it.
	Timeout time.Duration
}

type DownloadConfig struct {
	YTDLPPath      string
	FFmpegLocation string
	Timeout        time.Duration
}

// S3Config is optional. An empty BucketName disables export of downloads.
type S3Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	EndpointURL     string
	Prefix          string
}

func (c S3Config) Enabled() bool {
	return c.BucketName != ""
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	return FromEnv()
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	var err error

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.Host = getEnv("SERVER_HOST", "0.0.0.0")
	if cfg.Server.ShutdownTimeout, err = getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", "30s"); err != nil {
		return nil, err
	}

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")

	// YouTube client configuration
	if cfg.YouTube.HTTPTimeout, err = getEnvDuration("YOUTUBE_HTTP_TIMEOUT", "30s"); err != nil {
		return nil, err
	}

	// Transcript resolution
	cfg.Transcript.Workers = getEnvInt("TRANSCRIPT_WORKERS", 1)
	if cfg.Transcript.Workers < 1 {
		cfg.Transcript.Workers = 1
	}
	if cfg.Transcript.Timeout, err = getEnvDuration("TRANSCRIPT_TIMEOUT", "0s"); err != nil {
		return nil, err
	}

	// Download configuration
	cfg.Download.YTDLPPath = getEnv("YTDLP_PATH", "yt-dlp")
	cfg.Download.FFmpegLocation = getEnv("FFMPEG_LOCATION", "")
	if cfg.Download.Timeout, err = getEnvDuration("DOWNLOAD_TIMEOUT", "30m"); err != nil {
		return nil, err
	}

	// S3 configuration (optional)
	cfg.S3.BucketName = getEnv("S3_BUCKET_NAME", "")
	cfg.S3.Prefix = getEnv("S3_PREFIX", "downloads")
	cfg.S3.Region = getEnv("AWS_REGION", "us-east-1")
	cfg.S3.EndpointURL = getEnv("AWS_ENDPOINT_URL", "") // Optional for LocalStack
	cfg.S3.AccessKeyID = getEnv("AWS_ACCESS_KEY_ID", "")
	cfg.S3.SecretAccessKey = getEnv("AWS_SECRET_ACCESS_KEY", "")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key, defaultValue string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
