package openapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrUnknownOperation is returned when the requested logical operation is
	// not present in the operation table. No network call is made.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrMissingParameter is returned when a required parameter is absent
	// from the parameter map. No network call is made.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrUnknownParameter is returned when the parameter map contains a key
	// the operation does not declare. Extra parameters are rejected rather
	// than dropped so typos fail fast. No network call is made.
	ErrUnknownParameter = errors.New("unknown parameter")

	// ErrMissingCredentials is returned by client constructors when the API
	// key or Zalo App ID is empty.
	ErrMissingCredentials = errors.New("missing api key or zalo app id")

	// ErrTransport wraps connection, DNS, and TLS failures that occur before
	// a response was obtained. The SDK performs no automatic retry.
	ErrTransport = errors.New("transport failure")

	// ErrCancelled wraps failures caused by context cancellation or deadline
	// expiry of an in-flight call.
	ErrCancelled = errors.New("request cancelled")
)

// HTTPError is returned when the remote API responds with a status outside
// [200, 300). The response body is preserved verbatim for diagnostics; the
// SDK does not interpret it.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.Status)
	}
	return fmt.Sprintf("http %d: %s", e.Status, body)
}

// mapHTTPError converts a non-2xx response into an *HTTPError and returns
// nil for successful statuses.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &HTTPError{
		Status: resp.StatusCode(),
		Body:   strings.TrimSpace(string(resp.Body())),
	}
}

// classifyTransportError maps a request-level failure onto the SDK error
// taxonomy: cancellation and deadline expiry surface as ErrCancelled,
// everything else as ErrTransport. Shared by the sync and async adapters so
// both classify identically.
func classifyTransportError(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", op, ErrCancelled, err)
	}

	return fmt.Errorf("%s: %w: %w", op, ErrTransport, err)
}
