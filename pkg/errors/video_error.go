package errors

import (
	stderrors "errors"
	"fmt"
)

type VideoError struct {
	Code    string
	Message string
	Err     error
}

func (e *VideoError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *VideoError) Unwrap() error {
	return e.Err
}

// Code reports the taxonomy code of err, or "" when err is not a VideoError.
func Code(err error) string {
	var ve *VideoError
	if stderrors.As(err, &ve) {
		return ve.Code
	}
	return ""
}

var (
	ErrInvalidMedia = func(err error) *VideoError {
		return &VideoError{Code: "invalid_media", Message: "Uploaded file is not a decodable video", Err: err}
	}
	ErrNotFound = func(err error) *VideoError {
		return &VideoError{Code: "not_found", Message: "Video not found", Err: err}
	}
	ErrConflict = func(err error) *VideoError {
		return &VideoError{Code: "conflict", Message: "Video is already transcoding", Err: err}
	}
	ErrTranscodePending = func(err error) *VideoError {
		return &VideoError{Code: "transcode_pending", Message: "Transcoded file not yet available", Err: err}
	}
	ErrUnsupportedPreset = func(err error) *VideoError {
		return &VideoError{Code: "unsupported_preset", Message: "Unsupported transcode preset", Err: err}
	}
	ErrStorageUnavailable = func(err error) *VideoError {
		return &VideoError{Code: "storage_unavailable", Message: "Storage backend unavailable", Err: err}
	}
	ErrInvalidRange = func(err error) *VideoError {
		return &VideoError{Code: "invalid_range", Message: "Invalid Range header", Err: err}
	}
	ErrUnauthorized = func(err error) *VideoError {
		return &VideoError{Code: "unauthorized", Message: "Missing owner identity", Err: err}
	}
	ErrInternal = func(err error) *VideoError {
		return &VideoError{Code: "internal_error", Message: "Internal server error", Err: err}
	}
)
