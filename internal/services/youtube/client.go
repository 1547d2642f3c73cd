package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/kkdai/youtube/v2"
)

// captionKindASR marks a machine-generated caption track.
const captionKindASR = "asr"

// videoAPI is the part of *youtube.Client used here.
type videoAPI interface {
	GetVideoContext(ctx context.Context, url string) (*youtube.Video, error)
	GetTranscriptCtx(ctx context.Context, video *youtube.Video, lang string) (youtube.VideoTranscript, error)
	GetPlaylistContext(ctx context.Context, url string) (*youtube.Playlist, error)
}

// Client implements TranscriptProvider and PlaylistEnumerator on top of kkdai/youtube.
type Client struct {
	client     videoAPI
	httpClient *http.Client
}

var (
	_ TranscriptProvider = (*Client)(nil)
	_ PlaylistEnumerator = (*Client)(nil)
)

// NewClient creates a new YouTube client
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	httpClient := &http.Client{
		Timeout: timeout,
	}

	ytClient := &youtube.Client{
		HTTPClient: httpClient,
	}

	return &Client{
		client:     ytClient,
		httpClient: httpClient,
	}
}

// FetchTranscript fetches the transcript of the first language in languages the
// video offers. Manual tracks win over generated ones for the same language.
func (c *Client) FetchTranscript(ctx context.Context, videoID string, languages []string) ([]Segment, error) {
	video, err := c.getVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if len(video.CaptionTracks) == 0 {
		return nil, ErrTranscriptsDisabled
	}

	for _, lang := range languages {
		if track, ok := findTrack(video.CaptionTracks, lang); ok {
			return c.fetchTrack(ctx, video, track)
		}
	}

	return nil, fmt.Errorf("%w: %v (available: %v)", ErrNoTranscriptFound, languages, trackLanguages(video.CaptionTracks))
}

// ListTranscripts returns one handle per caption track, in the order YouTube lists them.
func (c *Client) ListTranscripts(ctx context.Context, videoID string) ([]TranscriptHandle, error) {
	video, err := c.getVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if len(video.CaptionTracks) == 0 {
		return nil, ErrTranscriptsDisabled
	}

	handles := make([]TranscriptHandle, 0, len(video.CaptionTracks))
	for _, track := range video.CaptionTracks {
		handles = append(handles, &captionHandle{client: c, video: video, track: track})
	}
	return handles, nil
}

// ListVideoURLs expands a playlist into watch URLs of its entries.
func (c *Client) ListVideoURLs(ctx context.Context, playlistURL string) ([]string, error) {
	playlist, err := c.client.GetPlaylistContext(ctx, playlistURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist: %w", err)
	}

	urls := make([]string, 0, len(playlist.Videos))
	for _, entry := range playlist.Videos {
		if entry == nil {
			continue
		}
		urls = append(urls, WatchURL(entry.ID))
	}
	return urls, nil
}

func (c *Client) getVideo(ctx context.Context, videoID string) (*youtube.Video, error) {
	video, err := c.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get video info: %w", err)
	}
	return video, nil
}

func (c *Client) fetchTrack(ctx context.Context, video *youtube.Video, track youtube.CaptionTrack) ([]Segment, error) {
	transcript, err := c.client.GetTranscriptCtx(ctx, video, track.LanguageCode)
	if err != nil {
		if errors.Is(err, youtube.ErrTranscriptDisabled) {
			return nil, ErrTranscriptsDisabled
		}
		return nil, fmt.Errorf("failed to fetch %s transcript: %w", track.LanguageCode, err)
	}
	return toSegments(transcript), nil
}

type captionHandle struct {
	client *Client
	video  *youtube.Video
	track  youtube.CaptionTrack
}

func (h *captionHandle) LanguageCode() string { return h.track.LanguageCode }

func (h *captionHandle) IsGenerated() bool { return h.track.Kind == captionKindASR }

func (h *captionHandle) Fetch(ctx context.Context) ([]Segment, error) {
	return h.client.fetchTrack(ctx, h.video, h.track)
}

// findTrack picks the track for lang, preferring a manual one.
func findTrack(tracks []youtube.CaptionTrack, lang string) (youtube.CaptionTrack, bool) {
	var generated *youtube.CaptionTrack
	for i := range tracks {
		if tracks[i].LanguageCode != lang {
			continue
		}
		if tracks[i].Kind != captionKindASR {
			return tracks[i], true
		}
		if generated == nil {
			generated = &tracks[i]
		}
	}
	if generated != nil {
		return *generated, true
	}
	return youtube.CaptionTrack{}, false
}

func trackLanguages(tracks []youtube.CaptionTrack) []string {
	langs := make([]string, 0, len(tracks))
	for _, t := range tracks {
		langs = append(langs, t.LanguageCode)
	}
	return langs
}

func toSegments(transcript youtube.VideoTranscript) []Segment {
	segments := make([]Segment, 0, len(transcript))
	for _, s := range transcript {
		segments = append(segments, Segment{
			Text:     s.Text,
			Start:    float64(s.StartMs) / 1000,
			Duration: float64(s.Duration) / 1000,
		})
	}
	return segments
}
