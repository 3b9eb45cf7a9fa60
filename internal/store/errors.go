package store

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// RequestError is returned when listing an inbox fails, either in transit
// or because the store answered with a non-2xx status or an unreadable body.
type RequestError struct {
	Parent string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("list %s: %v", e.Parent, e.Err)
}

// Unwrap returns the underlying error.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status reported by the store, or 0 when the
// request never produced a response.
func (e *RequestError) StatusCode() int {
	var gerr *googleapi.Error
	if errors.As(e.Err, &gerr) {
		return gerr.Code
	}
	return 0
}
