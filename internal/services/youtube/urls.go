package youtube

import (
	"net/url"
	"strings"
)

type URLKind int

const (
	URLKindUnsupported URLKind = iota
	URLKindSingle
	URLKindPlaylist
)

func (k URLKind) String() string {
	switch k {
	case URLKindSingle:
		return "single"
	case URLKindPlaylist:
		return "playlist"
	default:
		return "unsupported"
	}
}

// Classify sorts a URL by substring match only. A single-video URL carrying an
// unrelated list= fragment is treated as a playlist.
func Classify(rawURL string) URLKind {
	if !strings.Contains(rawURL, "youtube.com") && !strings.Contains(rawURL, "youtu.be") {
		return URLKindUnsupported
	}
	if strings.Contains(rawURL, "list=") {
		return URLKindPlaylist
	}
	return URLKindSingle
}

// ExtractVideoID returns the video id of youtu.be, /watch, /embed/ and /v/ URLs.
func ExtractVideoID(rawURL string) (string, bool) {
	if strings.Contains(rawURL, "youtu.be") {
		id := rawURL[strings.LastIndex(rawURL, "/")+1:]
		return id, id != ""
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	switch strings.ToLower(u.Hostname()) {
	case "www.youtube.com", "youtube.com":
	default:
		return "", false
	}

	var id string
	switch {
	case u.Path == "/watch":
		id = u.Query().Get("v")
	case strings.HasPrefix(u.Path, "/embed/"), strings.HasPrefix(u.Path, "/v/"):
		id = strings.Split(u.Path, "/")[2]
	}

	return id, id != ""
}

// WatchURL is the canonical single-video URL for id.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + url.QueryEscape(id)
}
