package errors

import (
	"encoding/json"
	"errors"
)

// categoryForStatus maps HTTP status codes to error categories.
// 408 and 429 are the only retryable 4xx codes; everything else in 4xx is
// a definitive answer from the service.
func categoryForStatus(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429:
			return Recoverable
		default:
			return Irrecoverable
		}
	default:
		return Recoverable
	}
}

// NewRemoteError builds a classified business failure from a non-success
// response. body is the raw response body; the "detail" field is extracted
// when present.
func NewRemoteError(operation string, statusCode int, body []byte) *RemoteError {
	return &RemoteError{
		Category:   categoryForStatus(statusCode),
		Operation:  operation,
		StatusCode: statusCode,
		Detail:     ExtractDetail(body),
	}
}

// NewNetworkError wraps a transport-level failure.
func NewNetworkError(operation string, err error) *NetworkError {
	return &NetworkError{Operation: operation, Underlying: err}
}

// AsRemote returns the RemoteError inside err, or nil.
func AsRemote(err error) *RemoteError {
	var re *RemoteError
	if errors.As(err, &re) {
		return re
	}
	return nil
}

// IsNetwork reports whether err is a connectivity failure.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// ExtractDetail pulls the human-readable reason out of an error response
// body. The services emit either {"detail": "..."} or
// {"detail": [{"msg": "..."}, ...]} (structured validation errors); the
// first message wins. Malformed bodies yield the empty string.
func ExtractDetail(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil && len(items) > 0 {
		return items[0].Msg
	}
	return ""
}
