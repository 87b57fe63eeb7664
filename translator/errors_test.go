package translator

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_MessagePrecedence(t *testing.T) {
	cause := errors.New("underlying failure")

	withMessage := &Error{Kind: KindDecode, Message: "safe message", Cause: cause}
	if withMessage.Error() != "safe message" {
		t.Errorf("Error() = %q", withMessage.Error())
	}

	withoutMessage := &Error{Kind: KindDecode, Cause: cause}
	if withoutMessage.Error() != "underlying failure" {
		t.Errorf("Error() = %q", withoutMessage.Error())
	}

	empty := &Error{Kind: KindDecode}
	if empty.Error() != "request failed" {
		t.Errorf("Error() = %q", empty.Error())
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	wrapped := fmt.Errorf("context: %w", &Error{Kind: KindTransient, Cause: cause})
	if !errors.Is(wrapped, cause) {
		t.Error("expected errors.Is to reach the cause through Error")
	}
}

func TestKindOf(t *testing.T) {
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("expected no kind for plain error")
	}
	if kind, ok := KindOf(invalidArgumentf("x")); !ok || kind != KindInvalidArgument {
		t.Errorf("kind = %v", kind)
	}
}

func TestStatusOf(t *testing.T) {
	if _, ok := StatusOf(invalidArgumentf("x")); ok {
		t.Error("expected no status for validation error")
	}
	if status, ok := StatusOf(serviceError(404, "missing")); !ok || status != 404 {
		t.Errorf("status = %d", status)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{serviceError(500, "server error"), true},
		{serviceError(429, "slow down"), true},
		{serviceError(400, "bad request"), false},
		{serviceError(401, "who are you"), false},
		{invalidArgumentf("empty"), false},
		{decodeError(errors.New("bad json")), false},
		{transportError(errors.New("dns failure")), true},
		{errors.New("plain"), false},
	}

	for _, tt := range tests {
		if got := IsRetryable(tt.err); got != tt.want {
			t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestServiceError_KindByStatus(t *testing.T) {
	tests := []struct {
		status int
		want   Kind
	}{
		{400, KindBadRequest},
		{401, KindAuth},
		{403, KindAuth},
		{404, KindBadRequest},
		{429, KindRateLimit},
		{500, KindTransient},
		{503, KindTransient},
	}

	for _, tt := range tests {
		kind, ok := KindOf(serviceError(tt.status, "msg"))
		if !ok || kind != tt.want {
			t.Errorf("serviceError(%d) kind = %v, want %v", tt.status, kind, tt.want)
		}
	}
}
