package utils

import "errors"

var (
	ErrClassNotFound      = errors.New("class not found")
	ErrInstructorNotFound = errors.New("instructor not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrLocationNotFound   = errors.New("location not found")
	ErrBlogPostNotFound   = errors.New("blog post not found")

	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError describes a rejected field in a submission
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
