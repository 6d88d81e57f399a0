package hrapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/googleapis/gax-go/v2"
)

// Error classes for the retry loop. A timeout or a 429 is worth another
// attempt; a 4xx/5xx outside that set is not.
var (
	unauthorized      = errors.New("unauthorized")
	exceededRateLimit = errors.New("rate limit exceeded")
	nonRetryable      = errors.New("non retryable")
)

var defaultRateLimitBackoff = &gax.Backoff{
	Initial:    2 * time.Second,
	Max:        30 * time.Second,
	Multiplier: 2,
}

func newRetry(ctx context.Context, backoff *gax.Backoff, timeout time.Duration) (context.Context, context.CancelFunc, *gax.Backoff) {
	if backoff == nil {
		backoff = defaultRateLimitBackoff
	}
	if timeout <= 0 {
		timeout = time.Minute
	}

	retryCtx, cancel := context.WithTimeout(ctx, timeout)
	return retryCtx, cancel, backoff
}

func getHTTPStatusCode(ctx context.Context, res *http.Response, apiName string) error {
	switch res.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("failed to call %s with cause %d %w", apiName, res.StatusCode, unauthorized)
	case http.StatusTooManyRequests:
		return fmt.Errorf("failed to call %s with cause %d %w", apiName, res.StatusCode, exceededRateLimit)
	default:
		return fmt.Errorf("failed to call %s with cause %d %w", apiName, res.StatusCode, nonRetryable)
	}
}
