package models

// Document is one video's flattened transcript.
type Document struct {
	PageContent string           `json:"page_content"`
	Metadata    DocumentMetadata `json:"metadata"`
}

type DocumentMetadata struct {
	// Source is the video URL as supplied by the caller, not the canonical id.
	Source string `json:"source"`
}

func NewDocument(content, source string) Document {
	return Document{
		PageContent: content,
		Metadata:    DocumentMetadata{Source: source},
	}
}

// ProcessURLRequest.URL is a pointer so a missing key can be told apart from
// an empty string; only the former is a malformed request.
type ProcessURLRequest struct {
	URL *string `json:"url" example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ"`
}

type ProcessURLResponse struct {
	Documents []Document `json:"documents"`
}

// ProcessURLError is returned with status 200; callers inspect the body.
type ProcessURLError struct {
	Error string `json:"error"`
}

type AudioDownloadRequest struct {
	YouTubeURL     *string `json:"youtube_url"`
	OutputFilename string  `json:"output_filename" example:"extracted_audio.mp3"`
	FFmpegLocation string  `json:"ffmpeg_location"`
}

type VideoDownloadRequest struct {
	YouTubeURL *string `json:"youtube_url"`
	OutputPath string  `json:"output_path" example:"."`
	FFmpegPath string  `json:"ffmpeg_path"`
}

type DownloadResponse struct {
	Message  string `json:"message"`
	Location string `json:"location,omitempty"`
}

type ErrorDetail struct {
	Detail string `json:"detail"`
}

// MissingFieldDetail is the 422 detail for a required key absent from the body.
func MissingFieldDetail(field string) string {
	return "field required: " + field
}
