// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the shared HTTP client facade used by every
// source adapter: fixed timeout, identifying User-Agent, retry with
// exponential backoff on transient upstream failures, and an optional
// one-shot fallback for certificate-validation errors.
package httputil

import (
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// transient server errors. Tests override this to avoid real sleeps.
var RetryBaseDelay = 500 * time.Millisecond

const defaultMaxAttempts = 3

// IsTransient reports whether an HTTP status code indicates a transient
// server-side failure worth retrying. Client errors never qualify.
func IsTransient(code int) bool {
	switch code {
	case http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// StatusError reports a completed request whose status was outside 2xx.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned HTTP %d", e.URL, e.StatusCode)
}

// DoWithRetry executes req and retries on HTTP 500/502/503/504 with
// exponential backoff. The delay starts at RetryBaseDelay and doubles
// each attempt. maxAttempts counts the first try; when it is 0 the
// default (3) is used. On each transient status the response body is
// drained and closed before sleeping. If the context is cancelled during
// a backoff wait the function returns ctx.Err(). After the last attempt
// the response is returned as-is so the caller can inspect it.
func DoWithRetry(client *http.Client, req *http.Request, maxAttempts int) (*http.Response, error) {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	ctx := req.Context()

	for attempt := 1; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if !IsTransient(resp.StatusCode) || attempt >= maxAttempts {
			return resp, nil
		}

		// Drain and close the body before retrying.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt-1))) * RetryBaseDelay
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}
