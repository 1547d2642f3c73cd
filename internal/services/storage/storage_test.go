package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denisAlshanov/ytscribe/internal/config"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey("/downloads/", "some/dir/extracted_audio.mp3")

	parts := strings.Split(key, "/")
	require.Len(t, parts, 3)
	assert.Equal(t, "downloads", parts[0])
	assert.Len(t, parts[1], 36)
	assert.Equal(t, "extracted_audio.mp3", parts[2])

	assert.NotEqual(t, key, ObjectKey("downloads", "extracted_audio.mp3"))
}

func TestObjectKey_EmptyPrefix(t *testing.T) {
	key := ObjectKey("", "video.mp4")
	assert.False(t, strings.HasPrefix(key, "/"))
	assert.True(t, strings.HasSuffix(key, "/video.mp4"))
}

func TestLocation(t *testing.T) {
	assert.Equal(t, "s3://media/downloads/x/a.mp3", Location("media", "downloads/x/a.mp3"))
}

func TestNewStorage_DisabledWithoutBucket(t *testing.T) {
	s, err := NewStorage(&config.S3Config{})
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, isNotFoundError(fmt.Errorf("head: %w", &types.NotFound{})))
	assert.True(t, isNotFoundError(&types.NoSuchKey{}))
	assert.False(t, isNotFoundError(errors.New("access denied")))
}

// fakeS3 answers path-style bucket and object requests for one bucket.
type fakeS3 struct {
	mu       sync.Mutex
	objects  map[string]bool
	requests []string
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)

	key := strings.TrimPrefix(r.URL.Path, "/media")
	key = strings.TrimPrefix(key, "/")
	switch {
	case !strings.HasPrefix(r.URL.Path, "/media"):
		w.WriteHeader(http.StatusNotFound)
	case r.Method == http.MethodHead && key == "":
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodHead && f.objects[key]:
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodHead:
		w.WriteHeader(http.StatusNotFound)
	case r.Method == http.MethodDelete:
		delete(f.objects, key)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newFakeS3Storage(t *testing.T, objects map[string]bool) (*S3Storage, *fakeS3) {
	t.Helper()
	fake := &fakeS3{objects: objects}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	s, err := NewS3Storage(&config.S3Config{
		Region:          "us-east-1",
		AccessKeyID:     "test",
		SecretAccessKey: "test",
		BucketName:      "media",
		EndpointURL:     srv.URL,
	})
	require.NoError(t, err)
	return s, fake
}

func TestS3Storage_ExistsAndDelete(t *testing.T) {
	s, fake := newFakeS3Storage(t, map[string]bool{"downloads/x/a.mp3": true})
	ctx := context.Background()

	exists, err := s.Exists(ctx, "downloads/x/a.mp3")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.Delete(ctx, "downloads/x/a.mp3"))

	exists, err = s.Exists(ctx, "downloads/x/a.mp3")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.Contains(t, fake.requests, "DELETE /media/downloads/x/a.mp3")
}

func TestS3Storage_Ping(t *testing.T) {
	s, _ := newFakeS3Storage(t, map[string]bool{})
	require.NoError(t, s.Ping(context.Background()))
	assert.Equal(t, "media", s.BucketName())
}
