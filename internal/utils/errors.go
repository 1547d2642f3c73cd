package utils

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeInvalidURL            ErrorCode = "INVALID_URL"
	ErrorCodeTranscriptUnavailable ErrorCode = "TRANSCRIPT_UNAVAILABLE"
	ErrorCodeCollaboratorError     ErrorCode = "COLLABORATOR_ERROR"
	ErrorCodeDownloadFailed        ErrorCode = "DOWNLOAD_FAILED"
	ErrorCodeStorageError          ErrorCode = "STORAGE_ERROR"
	ErrorCodeValidationError       ErrorCode = "VALIDATION_ERROR"
	ErrorCodeInternalError         ErrorCode = "INTERNAL_ERROR"
)

type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
	Err        error                  `json:"-"`
}

// Error returns the message alone; callers of /process-url/ read it verbatim.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewError(code ErrorCode, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NewErrorWithDetails(code ErrorCode, message string, statusCode int, details map[string]interface{}) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// AsAppError returns the first *AppError in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err carries an *AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

func NewValidationError(message string, details map[string]interface{}) *AppError {
	return NewErrorWithDetails(ErrorCodeValidationError, message, http.StatusUnprocessableEntity, details)
}

func NewNonYouTubeURLError(url string) *AppError {
	return NewErrorWithDetails(
		ErrorCodeInvalidURL,
		"Non-YouTube URL",
		http.StatusBadRequest,
		map[string]interface{}{
			"provided": url,
		},
	)
}

func NewInvalidVideoURLError(url string) *AppError {
	return NewErrorWithDetails(
		ErrorCodeInvalidURL,
		"Invalid YouTube URL",
		http.StatusBadRequest,
		map[string]interface{}{
			"expected_format": "https://www.youtube.com/watch?v=VIDEO_ID",
			"provided":        url,
		},
	)
}

func NewTranscriptUnavailableError(videoID string, err error) *AppError {
	return &AppError{
		Code:       ErrorCodeTranscriptUnavailable,
		Message:    fmt.Sprintf("No transcript available for video %s", videoID),
		StatusCode: http.StatusNotFound,
		Err:        err,
	}
}

func NewCollaboratorError(operation string, err error) *AppError {
	return &AppError{
		Code:       ErrorCodeCollaboratorError,
		Message:    fmt.Sprintf("Failed to %s", operation),
		StatusCode: http.StatusBadGateway,
		Err:        err,
	}
}

func NewDownloadError(err error) *AppError {
	return &AppError{
		Code:       ErrorCodeDownloadFailed,
		Message:    "Failed to download media",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewStorageError(err error) *AppError {
	return &AppError{
		Code:       ErrorCodeStorageError,
		Message:    "Failed to export media to object storage",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewInternalError() *AppError {
	return NewError(
		ErrorCodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)
}
