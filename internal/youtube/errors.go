package youtube

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

var (
	// Sentinel errors for errors.Is checks at the boundary.
	ErrChannelNotFound     = errors.New("upstream: channel not found")
	ErrVideoNotFound       = errors.New("upstream: video not found")
	ErrForbidden           = errors.New("upstream: access forbidden")
	ErrUpstreamUnavailable = errors.New("upstream: host unreachable or transport failure")
	ErrUpstreamError       = errors.New("upstream: API error response")
	ErrBadResponse         = errors.New("upstream: invalid response format or malformed data")
	ErrTimeout             = errors.New("upstream: request timed out")
)

// APIError is a rich error type that wraps the sentinel errors with context.
type APIError struct {
	Sentinel  error
	Operation string
	Status    int
	Body      string
	Err       error // Nested lower-level error (e.g. net.Error)
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("youtube: %s: %v", e.Operation, e.Sentinel)
	if e.Status > 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	if e.Body != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Body)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return e.Sentinel
}

// wrapError classifies a failed call into the sentinel taxonomy. Exactly one
// of err and status is meaningful: err covers transport failures, status the
// non-200 responses.
func wrapError(op string, err error, status int, body []byte) error {
	e := &APIError{
		Operation: op,
		Status:    status,
		Body:      redactSecrets(strings.TrimSpace(string(body))),
		Err:       redactErr(err),
	}

	switch {
	case err != nil:
		if isTimeout(err) {
			e.Sentinel = ErrTimeout
		} else {
			e.Sentinel = ErrUpstreamUnavailable
		}
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		// Rejected or quota-exhausted API key, or comments disabled.
		e.Sentinel = ErrForbidden
	default:
		e.Sentinel = ErrUpstreamError
	}
	return e
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// secretParams matches credential-bearing key=value pairs in URLs and error
// bodies. The API key travels as a query parameter, so transport errors would
// otherwise echo it verbatim.
var secretParams = regexp.MustCompile(`(?i)(key|token|sid|password)=[^&\s"']+`)

func redactSecrets(s string) string {
	return secretParams.ReplaceAllString(s, "$1=[REDACTED]")
}

func redactErr(err error) error {
	if err == nil {
		return nil
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		ue.URL = redactSecrets(ue.URL)
	}
	return err
}
