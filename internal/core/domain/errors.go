package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrNotConfirmed      = errors.New("action not confirmed")
	ErrUnauthorized      = errors.New("session is no longer valid")
	ErrServerUnreachable = errors.New("backend server is unreachable")
	ErrInvalidImage      = errors.New("file is not an image")
	ErrImageTooLarge     = errors.New("image exceeds the size limit")
	ErrInvalidDateRange  = errors.New("start date must not be after end date")
	ErrWorkspaceClosed   = errors.New("workspace is closed")
	ErrStaleResponse     = errors.New("response superseded by a newer request")
)

// APIError is a non-auth failure reported by the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded with status %d", e.Status)
	}
	return fmt.Sprintf("backend responded with status %d: %s", e.Status, e.Message)
}

const (
	msgUnreachable  = "Backend server is not running. Please start the backend server first."
	msgUnauthorized = "Your session has expired. Please log in again."
	msgValidation   = "Please fix the highlighted fields."
)

// UserMessage turns err into the string shown to the operator. fallback is
// used when the error carries nothing presentable.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var (
		apiErr *APIError
		verrs  ValidationErrors
	)
	switch {
	case errors.As(err, &verrs):
		return msgValidation
	case errors.Is(err, ErrServerUnreachable):
		return msgUnreachable
	case errors.Is(err, ErrUnauthorized):
		return msgUnauthorized
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fallback
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrNotConfirmed),
		errors.Is(err, ErrInvalidImage),
		errors.Is(err, ErrImageTooLarge),
		errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, ErrWorkspaceClosed),
		errors.Is(err, ErrStaleResponse):
		return err.Error()
	default:
		return fallback
	}
}
