package cms

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned by every call when no base URL is set
var ErrNotConfigured = errors.New("cms base url is not configured")

// StatusError is returned when the CMS answers with a non-2xx status
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cms returned status %d for %s %s", e.StatusCode, e.Method, e.Path)
}
