package eshop

import (
	"errors"
	"fmt"
)

var (
	// ErrPayloadMissing is returned when a page has no embedded product payload.
	ErrPayloadMissing = errors.New("embedded __NEXT_DATA__ payload not found")

	// ErrInvalidURL is returned for product URLs without scheme or host.
	ErrInvalidURL = errors.New("invalid URL")
)

// PayloadError reports an embedded payload that does not have the expected shape.
type PayloadError struct {
	Reason string
}

func (e *PayloadError) Error() string {
	return "malformed product payload: " + e.Reason
}

// HTTPError is returned when the shop answers with a non-2xx status.
type HTTPError struct {
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("GET %s: status %d", e.URL, e.StatusCode)
}
