package pixelcut

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedResponse = errors.New("pixelcut: unparseable response")
	ErrMissingResultURL  = errors.New("pixelcut: response missing result image url")
)

// TransportError wraps connection and timeout failures toward the service.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("pixelcut: request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ResponseError reports a non-2xx status from the service.
type ResponseError struct {
	StatusCode int
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("pixelcut: unexpected status %d", e.StatusCode)
}
