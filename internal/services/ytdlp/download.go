package ytdlp

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	AudioFormat = "bestaudio/best"
	VideoFormat = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"

	// VideoBaseName is the fixed stem of downloaded videos.
	VideoBaseName = "downloaded_video"

	progressPrefix   = "[progress]"
	progressTemplate = "download:" + progressPrefix + " %(progress.status)s %(progress.downloaded_bytes)s %(progress.total_bytes)s %(progress.total_bytes_estimate)s"
)

type AudioOptions struct {
	URL            string
	Output         string
	FFmpegLocation string
	OnProgress     func(Progress)
}

type VideoOptions struct {
	URL            string
	OutputDir      string
	FFmpegLocation string
	OnProgress     func(Progress)
}

// Result describes the file yt-dlp left on disk.
type Result struct {
	FilePath string
}

// ExtractAudio downloads the best audio stream of a single video and converts it to 320k MP3.
func (c *Client) ExtractAudio(ctx context.Context, opts AudioOptions) (*Result, error) {
	if strings.TrimSpace(opts.URL) == "" {
		return nil, fmt.Errorf("ytdlp: url is required")
	}
	if strings.TrimSpace(opts.Output) == "" {
		return nil, fmt.Errorf("ytdlp: output is required")
	}
	return c.download(ctx, audioArgs(opts), opts.OnProgress)
}

// DownloadBest downloads the best MP4 video and M4A audio and muxes them into
// <OutputDir>/downloaded_video.mp4. Existing files are not overwritten.
func (c *Client) DownloadBest(ctx context.Context, opts VideoOptions) (*Result, error) {
	if strings.TrimSpace(opts.URL) == "" {
		return nil, fmt.Errorf("ytdlp: url is required")
	}
	if strings.TrimSpace(opts.OutputDir) == "" {
		opts.OutputDir = "."
	}
	return c.download(ctx, videoArgs(opts), opts.OnProgress)
}

func audioArgs(opts AudioOptions) []string {
	args := []string{
		"--format", AudioFormat,
		"--output", opts.Output,
		"--no-playlist",
		"--extract-audio",
		"--audio-format", "mp3",
		"--audio-quality", "320K",
	}
	if opts.FFmpegLocation != "" {
		args = append(args, "--ffmpeg-location", opts.FFmpegLocation)
	}
	return append(append(args, reportingArgs()...), opts.URL)
}

func videoArgs(opts VideoOptions) []string {
	args := []string{
		"--format", VideoFormat,
		"--output", filepath.Join(opts.OutputDir, VideoBaseName+".%(ext)s"),
		"--merge-output-format", "mp4",
		"--no-overwrites",
		"--no-color",
	}
	if opts.FFmpegLocation != "" {
		args = append(args, "--ffmpeg-location", opts.FFmpegLocation)
	}
	return append(append(args, reportingArgs()...), opts.URL)
}

func reportingArgs() []string {
	return []string{
		"--newline",
		"--progress",
		"--progress-template", progressTemplate,
		"--print", "after_move:filepath",
	}
}

func (c *Client) download(ctx context.Context, args []string, onProgress func(Progress)) (*Result, error) {
	var onLine LineFunc
	if onProgress != nil {
		onLine = func(_, line string) {
			if p, ok := ParseProgress(line); ok {
				onProgress(p)
			}
		}
	}

	stdout, _, err := c.run(ctx, args, onLine)
	if err != nil {
		return nil, err
	}

	return &Result{FilePath: finalPath(string(stdout))}, nil
}

// finalPath picks the last stdout line that is not a bracketed status line,
// which is what --print after_move:filepath emits.
func finalPath(stdout string) string {
	lines := strings.Split(strings.ReplaceAll(stdout, "\r", "\n"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" || strings.HasPrefix(line, "[") {
			continue
		}
		return line
	}
	return ""
}

// Progress is one download progress report.
type Progress struct {
	Status          string
	DownloadedBytes float64
	TotalBytes      float64
}

// Percent is the share downloaded so far. It is unknown without a total.
func (p Progress) Percent() (float64, bool) {
	if p.TotalBytes <= 0 {
		return 0, false
	}
	return p.DownloadedBytes * 100 / p.TotalBytes, true
}

func (p Progress) Finished() bool {
	return p.Status == "finished"
}

// ParseProgress parses a line printed by the progress template. The exact
// total is used when known, else yt-dlp's estimate.
func ParseProgress(line string) (Progress, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), progressPrefix)
	if !ok {
		return Progress{}, false
	}

	fields := strings.Fields(rest)
	if len(fields) != 4 {
		return Progress{}, false
	}

	p := Progress{
		Status:          fields[0],
		DownloadedBytes: parseBytes(fields[1]),
		TotalBytes:      parseBytes(fields[2]),
	}
	if p.TotalBytes <= 0 {
		p.TotalBytes = parseBytes(fields[3])
	}
	return p, true
}

// parseBytes treats yt-dlp's "NA" and other non-numbers as zero.
func parseBytes(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
