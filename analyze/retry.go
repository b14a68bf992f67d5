package analyze

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/keytopics"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// RetryDelays returns n exponential backoff delays starting at one second.
// A non-positive n yields no retries.
func RetryDelays(n int) []time.Duration {
	if n <= 0 {
		return nil
	}
	delays := make([]time.Duration, n)
	d := time.Second
	for i := range delays {
		delays[i] = d
		d *= 2
	}
	return delays
}

// FetchWithRetryDelays fetches url, retrying once per entry in delays and
// sleeping that long before each retry. Nil delays means a single attempt.
// Only ERETRIEVAL failures are retried.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger *slog.Logger, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 || keytopics.ErrorCode(err) != keytopics.ERETRIEVAL {
			break
		}

		if logger != nil {
			logger.Warn("retrying fetch",
				"url", url,
				"attempt", attempt+2,
				"delay", delays[attempt],
				"err", err,
			)
		}

		select {
		case <-ctx.Done():
			return "", keytopics.Errorf(keytopics.ERETRIEVAL, "fetch %s: %v", url, ctx.Err())
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
