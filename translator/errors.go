package translator

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies client errors so callers can branch without matching on
// message strings.
type Kind string

const (
	// KindInvalidArgument is raised before any network call for empty or
	// missing required arguments.
	KindInvalidArgument Kind = "invalid_argument"
	// KindDecode marks a success response whose body could not be parsed
	// into the expected shape.
	KindDecode Kind = "decode"
	// Service-side kinds, derived from the response status class.
	KindAuth       Kind = "auth"
	KindRateLimit  Kind = "rate_limit"
	KindTransient  Kind = "transient"
	KindBadRequest Kind = "bad_request"
)

// Error is the typed error returned by every Client operation.
type Error struct {
	Kind Kind
	// StatusCode is the HTTP status of the service response. Zero when the
	// error was raised without a response (validation, transport, decode).
	StatusCode int
	// Message is safe for user-facing output and logs.
	Message string
	// Cause keeps the original internal error for troubleshooting.
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if msg := strings.TrimSpace(e.Message); msg != "" {
		return msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "request failed"
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func invalidArgumentf(format string, args ...any) error {
	return &Error{
		Kind:    KindInvalidArgument,
		Message: fmt.Sprintf(format, args...),
	}
}

func decodeError(cause error) error {
	return &Error{
		Kind:    KindDecode,
		Message: "service response format was invalid",
		Cause:   cause,
	}
}

func transportError(cause error) error {
	return &Error{
		Kind:    KindTransient,
		Message: "service request failed due to a network/runtime error",
		Cause:   cause,
	}
}

// serviceError builds the typed error for a non-success response. The kind
// follows the status class the way upstream API failures are usually
// classified: 401/403 auth, 429 rate limit, 5xx transient, other 4xx bad
// request.
func serviceError(statusCode int, message string) error {
	msg := strings.TrimSpace(message)
	if msg == "" {
		msg = http.StatusText(statusCode)
	}

	kind := KindBadRequest
	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		kind = KindAuth
	case statusCode == http.StatusTooManyRequests:
		kind = KindRateLimit
	case statusCode >= 500:
		kind = KindTransient
	}

	return &Error{
		Kind:       kind,
		StatusCode: statusCode,
		Message:    msg,
		Cause:      fmt.Errorf("service status=%d message=%s", statusCode, msg),
	}
}

// KindOf returns the kind of err when it is a translator error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}

// StatusOf returns the HTTP status carried by err, if any.
func StatusOf(err error) (int, bool) {
	var e *Error
	if !errors.As(err, &e) || e.StatusCode == 0 {
		return 0, false
	}
	return e.StatusCode, true
}

// IsInvalidArgument reports whether err was raised by pre-flight validation.
func IsInvalidArgument(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindInvalidArgument
}

// IsRetryable reports whether the failure may succeed on a later attempt.
// The client itself never retries; this is advisory for callers.
func IsRetryable(err error) bool {
	kind, ok := KindOf(err)
	if !ok {
		return false
	}
	return kind == KindTransient || kind == KindRateLimit
}
