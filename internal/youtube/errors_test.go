package youtube

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestWrapErrorSentinels(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		status   int
		sentinel error
	}{
		{
			name:     "HTTP 403",
			status:   http.StatusForbidden,
			sentinel: ErrForbidden,
		},
		{
			name:     "HTTP 401",
			status:   http.StatusUnauthorized,
			sentinel: ErrForbidden,
		},
		{
			name:     "HTTP 500",
			status:   http.StatusInternalServerError,
			sentinel: ErrUpstreamError,
		},
		{
			name:     "HTTP 404",
			status:   http.StatusNotFound,
			sentinel: ErrUpstreamError,
		},
		{
			name:     "HTTP 400",
			status:   http.StatusBadRequest,
			sentinel: ErrUpstreamError,
		},
		{
			name:     "Network Timeout",
			err:      &net.DNSError{IsTimeout: true},
			sentinel: ErrTimeout,
		},
		{
			name:     "Context Timeout",
			err:      context.DeadlineExceeded,
			sentinel: ErrTimeout,
		},
		{
			name:     "Connection Refused",
			err:      errors.New("dial tcp: connection refused"),
			sentinel: ErrUpstreamUnavailable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := wrapError("test", tc.err, tc.status, nil)
			if !errors.Is(wrapped, tc.sentinel) {
				t.Errorf("expected sentinel %v, got %v", tc.sentinel, wrapped)
			}

			// Verify context remains (diagnostic fields)
			var apiErr *APIError
			if !errors.As(wrapped, &apiErr) {
				t.Fatal("expected error to be *APIError")
			}
			if apiErr.Operation != "test" {
				t.Errorf("expected operation 'test', got %s", apiErr.Operation)
			}
			if apiErr.Status != tc.status {
				t.Errorf("expected status %d, got %d", tc.status, apiErr.Status)
			}
		})
	}
}

func TestWrapErrorBodyRedaction(t *testing.T) {
	body := []byte(`{"error": "request rejected: key=AIzaSyB-secret123 token=abcd-1234 password=hunter2"}`)
	err := wrapError("redact_test", nil, 403, body)

	msg := err.Error()
	if strings.Contains(msg, "AIzaSyB-secret123") {
		t.Error("expected key to be redacted")
	}
	if strings.Contains(msg, "abcd-1234") {
		t.Error("expected token to be redacted")
	}
	if strings.Contains(msg, "hunter2") {
		t.Error("expected password to be redacted")
	}
	if !strings.Contains(msg, "[REDACTED]") {
		t.Error("expected [REDACTED] placeholder")
	}
}

func TestWrapErrorRedactsRequestURL(t *testing.T) {
	cause := &url.Error{
		Op:  "Get",
		URL: "https://www.googleapis.com/youtube/v3/channels?forHandle=x&key=AIzaSyB-secret123",
		Err: errors.New("dial tcp: connection refused"),
	}
	err := wrapError("channels.list", cause, 0, nil)

	msg := err.Error()
	if strings.Contains(msg, "AIzaSyB-secret123") {
		t.Errorf("expected key to be redacted, got %q", msg)
	}
	if !strings.Contains(msg, "key=[REDACTED]") {
		t.Errorf("expected redacted key parameter, got %q", msg)
	}
}
