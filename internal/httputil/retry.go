// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// RetryBaseDelay controls the wait before a retry attempt: the waits
// grow as 1x, 2x, ... the base. Tests override this to avoid real
// sleeps.
var RetryBaseDelay = 20 * time.Second

const defaultMaxRetries = 3

// BuildRequest constructs a fresh request for one attempt. Multipart
// upload bodies are consumed by the transport, so every attempt must
// rebuild its own request.
type BuildRequest func(ctx context.Context) (*http.Request, error)

// RetriesExhaustedError reports that every attempt failed with a
// retryable error. Last holds the error from the final attempt.
type RetriesExhaustedError struct {
	Attempts int
	Last     error
}

func (e *RetriesExhaustedError) Error() string {
	return fmt.Sprintf("giving up after %d attempts: %v", e.Attempts, e.Last)
}

func (e *RetriesExhaustedError) Unwrap() error { return e.Last }

// DoWithRetry executes the request and retries on network timeouts and
// HTTP 503 (a hosted service warming up from sleep) with linearly
// growing waits. When maxRetries is 0 the default (3) is used. On each
// 503 the response body is drained and closed before waiting. If the
// context is cancelled during a wait the function returns ctx.Err().
// Non-retryable failures return immediately; exhausting the attempts
// returns a *RetriesExhaustedError wrapping the last failure.
func DoWithRetry(ctx context.Context, client *http.Client, build BuildRequest, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			wait := time.Duration(attempt) * RetryBaseDelay
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		req, err := build(ctx)
		if err != nil {
			return nil, err
		}

		resp, err := client.Do(req)
		if err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				lastErr = fmt.Errorf("request timed out: %w", err)
				continue
			}
			return nil, err
		}

		if resp.StatusCode == http.StatusServiceUnavailable {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			lastErr = fmt.Errorf("server returned HTTP 503 (warming up)")
			continue
		}

		return resp, nil
	}

	return nil, &RetriesExhaustedError{Attempts: maxRetries, Last: lastErr}
}
