// Package errors provides error classification for the SaludYa client.
// Classification drives two policies: whether an idempotent request may be
// retried, and which user-facing message the orchestration boundary shows.
package errors

import "fmt"

// ErrorCategory determines how a failure is handled by retry logic.
type ErrorCategory int

const (
	// Recoverable errors may be retried (idempotent requests only).
	// Examples: 5xx responses, network timeouts, connection failures.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors fail immediately without retry.
	// Examples: 400 Bad Request, 401 Unauthorized, 404 Not Found.
	Irrecoverable
)

// String returns a human-readable representation of the category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// RemoteError is a business failure: the remote service responded with a
// non-success status. Detail carries the server-supplied human-readable
// reason when one was present.
type RemoteError struct {
	Category   ErrorCategory
	Operation  string
	StatusCode int
	Detail     string // extracted from the response "detail" payload, may be empty
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("[%s] %s: HTTP %d: %s", e.Category, e.Operation, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("[%s] %s: HTTP %d", e.Category, e.Operation, e.StatusCode)
}

// NetworkError is a connectivity failure: the request never produced an
// HTTP response, or the response body could not be decoded. Always
// recoverable for retry purposes, always mapped to a fixed generic
// message before it reaches a caller.
type NetworkError struct {
	Operation  string
	Underlying error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", Recoverable, e.Operation, e.Underlying)
}

// Unwrap returns the transport-level error.
func (e *NetworkError) Unwrap() error { return e.Underlying }

// IsIrrecoverable reports whether err must not be retried.
func IsIrrecoverable(err error) bool {
	if re, ok := err.(*RemoteError); ok {
		return re.Category == Irrecoverable
	}
	return false
}
