package pageurl

import (
	"errors"
)

// CodeInvalidURL identifies InvalidURLError in API responses.
const CodeInvalidURL = "invalid_url"

// ErrInvalidURL matches every InvalidURLError via errors.Is.
var ErrInvalidURL = errors.New("invalid url")

// InvalidURLError reports that the current path does not have the shape
// a route field extractor expects.
type InvalidURLError struct {
	Message  string // exact text, e.g. "Invalid topic id url"
	Pathname string
	Cause    error // set when a segment was missing or could not be decoded
}

func (e *InvalidURLError) Error() string {
	return e.Message
}

func (e *InvalidURLError) Unwrap() error {
	return e.Cause
}

func (e *InvalidURLError) Is(target error) bool {
	return target == ErrInvalidURL
}

// Code identifies the error kind in API responses.
func (e *InvalidURLError) Code() string {
	return CodeInvalidURL
}

func invalidURL(msg, pathname string, cause error) error {
	return &InvalidURLError{Message: msg, Pathname: pathname, Cause: cause}
}
