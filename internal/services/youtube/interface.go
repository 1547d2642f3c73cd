package youtube

import (
	"context"
	"errors"
)

var (
	// ErrNoTranscriptFound means none of the requested languages has a transcript.
	ErrNoTranscriptFound = errors.New("no transcript found for the requested languages")

	// ErrTranscriptsDisabled means the video exposes no caption tracks at all.
	ErrTranscriptsDisabled = errors.New("transcripts are disabled for this video")
)

// Segment is one timed caption line. Start and Duration are in seconds.
type Segment struct {
	Text     string
	Start    float64
	Duration float64
}

// TranscriptHandle is one transcript a video offers, fetched on demand.
type TranscriptHandle interface {
	LanguageCode() string
	IsGenerated() bool
	Fetch(ctx context.Context) ([]Segment, error)
}

// TranscriptProvider retrieves captions for a video.
type TranscriptProvider interface {
	// FetchTranscript returns the first transcript matching languages, in order.
	FetchTranscript(ctx context.Context, videoID string, languages []string) ([]Segment, error)

	// ListTranscripts enumerates every transcript the video offers.
	ListTranscripts(ctx context.Context, videoID string) ([]TranscriptHandle, error)
}

// PlaylistEnumerator expands a playlist URL into its member video URLs, in order.
type PlaylistEnumerator interface {
	ListVideoURLs(ctx context.Context, playlistURL string) ([]string, error)
}
