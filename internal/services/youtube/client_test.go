package youtube

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kkdai/youtube/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVideoAPI struct {
	video       *youtube.Video
	videoErr    error
	transcripts map[string]youtube.VideoTranscript
	transErr    error
	playlist    *youtube.Playlist
	playlistErr error
	fetched     []string
}

func (f *fakeVideoAPI) GetVideoContext(ctx context.Context, url string) (*youtube.Video, error) {
	return f.video, f.videoErr
}

func (f *fakeVideoAPI) GetTranscriptCtx(ctx context.Context, video *youtube.Video, lang string) (youtube.VideoTranscript, error) {
	f.fetched = append(f.fetched, lang)
	if f.transErr != nil {
		return nil, f.transErr
	}
	return f.transcripts[lang], nil
}

func (f *fakeVideoAPI) GetPlaylistContext(ctx context.Context, url string) (*youtube.Playlist, error) {
	return f.playlist, f.playlistErr
}

func newTestClient(api videoAPI) *Client {
	return &Client{client: api}
}

func TestNewClient_DefaultTimeout(t *testing.T) {
	c := NewClient(0)
	assert.Equal(t, 30*time.Second, c.httpClient.Timeout)
	assert.NotNil(t, c.client)
}

func TestFetchTranscript_NoCaptionTracks(t *testing.T) {
	api := &fakeVideoAPI{video: &youtube.Video{ID: "abc"}}
	c := newTestClient(api)

	_, err := c.FetchTranscript(context.Background(), "abc", []string{"en"})
	assert.ErrorIs(t, err, ErrTranscriptsDisabled)

	_, err = c.ListTranscripts(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrTranscriptsDisabled)
	assert.Empty(t, api.fetched)
}

func TestFetchTranscript_LanguageMissing(t *testing.T) {
	api := &fakeVideoAPI{video: &youtube.Video{ID: "abc", CaptionTracks: []youtube.CaptionTrack{
		{LanguageCode: "fr", Kind: "asr"},
		{LanguageCode: "de"},
	}}}
	c := newTestClient(api)

	_, err := c.FetchTranscript(context.Background(), "abc", []string{"en"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoTranscriptFound)
	assert.Contains(t, err.Error(), "[fr de]")
	assert.Empty(t, api.fetched)
}

func TestFetchTranscript_FirstMatchingLanguage(t *testing.T) {
	api := &fakeVideoAPI{
		video: &youtube.Video{ID: "abc", CaptionTracks: []youtube.CaptionTrack{
			{LanguageCode: "de"},
			{LanguageCode: "en", Kind: "asr"},
		}},
		transcripts: map[string]youtube.VideoTranscript{
			"en": {{Text: "hello", StartMs: 0, Duration: 1000}},
		},
	}
	c := newTestClient(api)

	segments, err := c.FetchTranscript(context.Background(), "abc", []string{"es", "en", "de"})
	require.NoError(t, err)
	assert.Equal(t, []Segment{{Text: "hello", Start: 0, Duration: 1}}, segments)
	assert.Equal(t, []string{"en"}, api.fetched)
}

func TestFetchTranscript_Errors(t *testing.T) {
	c := newTestClient(&fakeVideoAPI{videoErr: errors.New("video is private")})
	_, err := c.FetchTranscript(context.Background(), "abc", []string{"en"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get video info")
	assert.NotErrorIs(t, err, ErrNoTranscriptFound)

	video := &youtube.Video{ID: "abc", CaptionTracks: []youtube.CaptionTrack{{LanguageCode: "en"}}}

	c = newTestClient(&fakeVideoAPI{video: video, transErr: youtube.ErrTranscriptDisabled})
	_, err = c.FetchTranscript(context.Background(), "abc", []string{"en"})
	assert.ErrorIs(t, err, ErrTranscriptsDisabled)

	c = newTestClient(&fakeVideoAPI{video: video, transErr: errors.New("429 too many requests")})
	_, err = c.FetchTranscript(context.Background(), "abc", []string{"en"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch en transcript")
}

func TestListTranscripts_HandlesInOrder(t *testing.T) {
	api := &fakeVideoAPI{
		video: &youtube.Video{ID: "abc", CaptionTracks: []youtube.CaptionTrack{
			{LanguageCode: "fr", Kind: "asr"},
			{LanguageCode: "en-GB"},
		}},
		transcripts: map[string]youtube.VideoTranscript{
			"en-GB": {{Text: "colour", StartMs: 2000, Duration: 500}},
		},
	}
	c := newTestClient(api)

	handles, err := c.ListTranscripts(context.Background(), "abc")
	require.NoError(t, err)
	require.Len(t, handles, 2)
	assert.Equal(t, "fr", handles[0].LanguageCode())
	assert.True(t, handles[0].IsGenerated())
	assert.Equal(t, "en-GB", handles[1].LanguageCode())
	assert.False(t, handles[1].IsGenerated())

	segments, err := handles[1].Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Segment{{Text: "colour", Start: 2, Duration: 0.5}}, segments)
	assert.Equal(t, []string{"en-GB"}, api.fetched)
}

func TestListVideoURLs(t *testing.T) {
	api := &fakeVideoAPI{playlist: &youtube.Playlist{
		ID: "PL123",
		Videos: []*youtube.PlaylistEntry{
			{ID: "one"},
			nil,
			{ID: "two"},
		},
	}}
	c := newTestClient(api)

	urls, err := c.ListVideoURLs(context.Background(), "https://www.youtube.com/playlist?list=PL123")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://www.youtube.com/watch?v=one",
		"https://www.youtube.com/watch?v=two",
	}, urls)

	c = newTestClient(&fakeVideoAPI{playlistErr: errors.New("playlist not found")})
	_, err = c.ListVideoURLs(context.Background(), "https://www.youtube.com/playlist?list=PL404")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get playlist")
}
