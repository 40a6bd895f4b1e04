package fetch

import (
	"errors"
	"fmt"
)

// ErrTooManyRedirects indicates the resource redirected more than maxRedirects times
var ErrTooManyRedirects = errors.New("too many redirects")

// ErrResourceTooLarge indicates the response body exceeded the configured limit
var ErrResourceTooLarge = errors.New("resource exceeds the maximum allowed size")

// StatusError is returned when the server answers with a non-2xx status
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Requested resource responded with code: %d.", e.StatusCode)
}

// Retryable reports whether the request may succeed when repeated
func (e *StatusError) Retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}
