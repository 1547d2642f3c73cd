// Package transcript turns YouTube video and playlist URLs into transcript documents.
package transcript

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/denisAlshanov/ytscribe/internal/models"
	"github.com/denisAlshanov/ytscribe/internal/services/youtube"
	"github.com/denisAlshanov/ytscribe/internal/utils"
)

const (
	PreferredLanguage = "en"
	FallbackLanguage  = "en-GB"
)

type Resolver struct {
	provider  youtube.TranscriptProvider
	playlists youtube.PlaylistEnumerator
	workers   int
	timeout   time.Duration
}

type Option func(*Resolver)

// WithWorkers bounds how many playlist videos resolve at once. Output order is
// unaffected. Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(r *Resolver) {
		if n < 1 {
			n = 1
		}
		r.workers = n
	}
}

// WithTimeout limits each video's resolution. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		r.timeout = d
	}
}

func NewResolver(provider youtube.TranscriptProvider, playlists youtube.PlaylistEnumerator, opts ...Option) *Resolver {
	r := &Resolver{
		provider:  provider,
		playlists: playlists,
		workers:   1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveURL returns one Document per video of rawURL that has a transcript.
// Videos without one are omitted. Input errors carry utils.ErrorCodeInvalidURL.
func (r *Resolver) ResolveURL(ctx context.Context, rawURL string) ([]models.Document, error) {
	docs, err := r.resolveByKind(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("Error processing URL: %w", err)
	}
	return docs, nil
}

func (r *Resolver) resolveByKind(ctx context.Context, rawURL string) ([]models.Document, error) {
	switch youtube.Classify(rawURL) {
	case youtube.URLKindSingle:
		docs, err := r.resolveVideoURL(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("Error processing YouTube URL: %w", err)
		}
		return docs, nil
	case youtube.URLKindPlaylist:
		docs, err := r.resolvePlaylistURL(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("Error processing YouTube playlist URL: %w", err)
		}
		return docs, nil
	default:
		return nil, utils.NewNonYouTubeURLError(rawURL)
	}
}

func (r *Resolver) resolveVideoURL(ctx context.Context, rawURL string) ([]models.Document, error) {
	videoID, ok := youtube.ExtractVideoID(rawURL)
	if !ok {
		return nil, utils.NewInvalidVideoURLError(rawURL)
	}

	docs := []models.Document{}
	if doc, ok := r.resolveDocument(ctx, videoID, rawURL); ok {
		docs = append(docs, doc)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *Resolver) resolvePlaylistURL(ctx context.Context, rawURL string) ([]models.Document, error) {
	urls, err := r.playlists.ListVideoURLs(ctx, rawURL)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, utils.NewCollaboratorError("enumerate playlist", err)
	}

	// Every member must parse before any transcript is fetched.
	ids := make([]string, len(urls))
	for i, u := range urls {
		id, ok := youtube.ExtractVideoID(u)
		if !ok {
			return nil, utils.NewInvalidVideoURLError(u)
		}
		ids[i] = id
	}

	utils.LogInfo(ctx, "Resolving playlist transcripts", utils.Fields{
		"playlist": rawURL,
		"videos":   len(ids),
		"workers":  r.workers,
	})

	results := make([]*models.Document, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i := range ids {
		i := i
		g.Go(func() error {
			if doc, ok := r.resolveDocument(gctx, ids[i], urls[i]); ok {
				results[i] = &doc
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	docs := make([]models.Document, 0, len(results))
	for _, doc := range results {
		if doc != nil {
			docs = append(docs, *doc)
		}
	}
	return docs, nil
}

func (r *Resolver) resolveDocument(ctx context.Context, videoID, source string) (models.Document, bool) {
	segments, ok := r.resolve(ctx, videoID, source)
	if !ok {
		return models.Document{}, false
	}
	return models.NewDocument(Flatten(segments), source), true
}

// ResolveTranscript picks one transcript for videoID: English, else en-GB,
// else the first listed. It reports false when none could be fetched; the
// reason is logged, never returned.
func (r *Resolver) ResolveTranscript(ctx context.Context, videoID string) ([]youtube.Segment, bool) {
	return r.resolve(ctx, videoID, "")
}

func (r *Resolver) resolve(ctx context.Context, videoID, source string) ([]youtube.Segment, bool) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	fields := utils.Fields{"video_id": videoID}
	if source != "" {
		fields["source"] = source
	}

	segments, err := r.selectTranscript(ctx, videoID)
	if err != nil {
		fields["transcripts_disabled"] = errors.Is(err, youtube.ErrTranscriptsDisabled)
		fields["error"] = err.Error()
		utils.LogWarn(ctx, "Skipping video without usable transcript", fields)
		return nil, false
	}
	if len(segments) == 0 {
		utils.LogWarn(ctx, "Skipping video with empty transcript", fields)
		return nil, false
	}

	utils.LogDebug(ctx, "Transcript resolved", fields)
	return segments, true
}

func (r *Resolver) selectTranscript(ctx context.Context, videoID string) ([]youtube.Segment, error) {
	segments, err := r.provider.FetchTranscript(ctx, videoID, []string{PreferredLanguage})
	if err == nil {
		return segments, nil
	}
	if !errors.Is(err, youtube.ErrNoTranscriptFound) {
		return nil, utils.NewTranscriptUnavailableError(videoID, err)
	}

	handles, err := r.provider.ListTranscripts(ctx, videoID)
	if err != nil {
		return nil, utils.NewTranscriptUnavailableError(videoID, err)
	}

	handle := pickFallback(handles)
	if handle == nil {
		return nil, utils.NewTranscriptUnavailableError(videoID, youtube.ErrNoTranscriptFound)
	}

	segments, err = handle.Fetch(ctx)
	if err != nil {
		return nil, utils.NewTranscriptUnavailableError(videoID, err)
	}
	return segments, nil
}

// pickFallback returns the en-GB handle if any, else the first handle that is
// generated or has a language code. The second test holds for practically
// every handle, so it amounts to taking the first one listed.
func pickFallback(handles []youtube.TranscriptHandle) youtube.TranscriptHandle {
	for _, h := range handles {
		if h.LanguageCode() == FallbackLanguage {
			return h
		}
	}
	for _, h := range handles {
		if h.IsGenerated() || h.LanguageCode() != "" {
			return h
		}
	}
	return nil
}

// Flatten joins segment texts with single spaces, in order, untouched.
func Flatten(segments []youtube.Segment) string {
	texts := make([]string, len(segments))
	for i, s := range segments {
		texts[i] = s.Text
	}
	return strings.Join(texts, " ")
}
