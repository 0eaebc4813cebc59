// Package common defines shared helpers and sentinel errors used across
// the WP Cloud client. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Local input errors (no request was sent).
	ErrValidation       = errors.New("validation failed")
	ErrPermissionDenied = errors.New("permission denied")

	// Auth errors (credentials or token rejected by the backend).
	ErrUnauthorized = errors.New("unauthorized")

	// Session errors.
	ErrNoSession = errors.New("no active session")

	// Transport / response errors.
	ErrUnavailable       = errors.New("server unavailable")
	ErrMalformedResponse = errors.New("malformed response")

	// A response that lost the race against a newer request for the
	// same view. Callers drop the result instead of committing it.
	ErrStaleResponse = errors.New("stale response")

	// The upload ticket named an object key other than the expected
	// "<ownerId>/<fileName>".
	ErrObjectKeyMismatch = errors.New("object key mismatch")
)

// APIError is a non-success response from a vault endpoint. Message carries
// the body's "error" field when the backend provided one, otherwise a
// generic "HTTP <status>" text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Unwrap lets errors.Is treat credential/token rejections as ErrUnauthorized.
func (e *APIError) Unwrap() error {
	if e.Status == 401 || e.Status == 403 {
		return ErrUnauthorized
	}
	return nil
}

// TransferError is a failed direct write to storage. It keeps the HTTP
// status and the raw response body for diagnostics; the upload attempt it
// belongs to is terminal.
type TransferError struct {
	Status int
	Body   string
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("storage write failed: HTTP %d %s", e.Status, e.Body)
}
