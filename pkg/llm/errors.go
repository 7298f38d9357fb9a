package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ErrorKind classifies a provider failure for retry and HTTP mapping.
type ErrorKind string

const (
	// KindTransient — network failure or timeout; safe to retry once.
	KindTransient ErrorKind = "transient"
	// KindRateLimited — provider returned 429.
	KindRateLimited ErrorKind = "rate_limited"
	// KindInvalidRequest — provider rejected the request (4xx other than auth).
	KindInvalidRequest ErrorKind = "invalid_request"
	// KindAuth — credentials rejected (401/403).
	KindAuth ErrorKind = "auth"
	// KindServer — provider 5xx.
	KindServer ErrorKind = "server"
)

// Retryable reports whether a single retry is worthwhile.
func (k ErrorKind) Retryable() bool {
	switch k {
	case KindTransient, KindRateLimited, KindServer:
		return true
	}
	return false
}

// Error wraps a provider failure with its classification.
type Error struct {
	Kind ErrorKind
	Op   string // "chat" or "embed"
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("llm %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the classification from an error chain. Unclassified
// errors report as transient.
func KindOf(err error) ErrorKind {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr.Kind
	}
	return KindTransient
}

// Retry backoff bounds for the single retry attempt.
const (
	retryBackoffMin = 250 * time.Millisecond
	retryBackoffMax = 750 * time.Millisecond
)

// classify maps a raw go-openai / transport error to an ErrorKind.
func classify(err error) ErrorKind {
	// Deadline expiry surfaces as transient to callers.
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindTransient
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return kindFromStatus(apiErr.HTTPStatusCode)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return kindFromStatus(reqErr.HTTPStatusCode)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindTransient
	}

	return KindTransient
}

func kindFromStatus(status int) ErrorKind {
	switch {
	case status == 401 || status == 403:
		return KindAuth
	case status == 429:
		return KindRateLimited
	case status >= 500:
		return KindServer
	case status >= 400:
		return KindInvalidRequest
	default:
		return KindTransient
	}
}
