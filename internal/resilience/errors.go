// Package resilience classifies provider failures and paces outbound calls.
package resilience

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"syscall"
)

// httpStatusCoder is implemented by provider API errors that carry an HTTP
// status (serper.APIError, firecrawl.APIError).
type httpStatusCoder interface {
	HTTPStatusCode() int
}

// IsRateLimited reports whether err is a provider rate-limit signal (429).
// Discovery abandons the remainder of the current source pass on this.
func IsRateLimited(err error) bool {
	var sc httpStatusCoder
	if errors.As(err, &sc) {
		return sc.HTTPStatusCode() == http.StatusTooManyRequests
	}
	return false
}

// IsTimeout reports whether err is a timeout: context deadline, network
// timeout, or a provider 408. Discovery skips to the next page path on this.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var sc httpStatusCoder
	if errors.As(err, &sc) {
		return sc.HTTPStatusCode() == http.StatusRequestTimeout
	}
	return false
}

// IsTransient reports whether err is worth retrying: rate limits, timeouts,
// 5xx responses, or common network-level failures.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var sc httpStatusCoder
	if errors.As(err, &sc) {
		switch code := sc.HTTPStatusCode(); {
		case code == http.StatusRequestTimeout,
			code == http.StatusTooManyRequests,
			code >= 500 && code <= 599:
			return true
		default:
			return false
		}
	}

	if IsTimeout(err) {
		return true
	}

	if errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNABORTED) {
		return true
	}

	// Wrapped HTTP-client errors lose their type; fall back to message
	// heuristics.
	msg := strings.ToLower(err.Error())
	for _, p := range []string{
		"connection reset by peer",
		"broken pipe",
		"no such host",
		"tls handshake timeout",
		"i/o timeout",
	} {
		if strings.Contains(msg, p) {
			return true
		}
	}

	return false
}
