package http

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// BackoffConfig controls retry behaviour for one client or one request.
// Only transient failures (transport errors, 429, 5xx) are retried.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

var (
	errRateLimited = errors.New("rate limited")
	errServerError = errors.New("server error")
	errCircuitOpen = errors.New("circuit breaker open")
)

// WithCircuitBreaker installs a circuit breaker in front of every request
// the client sends. Consecutive transient failures open the circuit and
// fail calls fast until the breaker half-opens.
func (hc *Client) WithCircuitBreaker(name string) *Client {
	hc.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: name,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		Timeout: 30 * time.Second,
	})
	return hc
}

type attemptResult struct {
	success any
	failure any
	status  int
}

// doRequestWithBackoff runs doRequest under the optional request- or
// client-level backoff policy and the client's circuit breaker.
func (hc *Client) doRequestWithBackoff(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any, backoff *BackoffConfig) (any, any, int, error) {
	if backoff == nil {
		backoff = hc.defaultBackoff
	}
	if backoff == nil {
		backoff = &BackoffConfig{}
	}

	var attempt int
	for {
		if ctx.Err() != nil {
			return nil, nil, 0, ctx.Err()
		}

		success, failure, status, err := hc.doAttempt(ctx, method, path, queryParams, headers, body, successResp, errorResp)
		if err == nil {
			return success, failure, status, nil
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, failure, status, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}
		if !isTransient(status, err) || attempt >= backoff.MaxRetries {
			return nil, failure, status, err
		}

		if hc.logger != nil {
			hc.logger.LogRequestRetry(method, hc.buildURL(path), headers, status, err, attempt+1, backoff.MaxRetries)
		}

		delay := backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if backoff.MaxInterval > 0 && delay > backoff.MaxInterval {
			delay = backoff.MaxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, nil, 0, ctx.Err()
		case <-timer.C:
		}
		attempt++
	}
}

func (hc *Client) doAttempt(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) (any, any, int, error) {
	if hc.breaker == nil {
		return hc.doRequest(ctx, method, path, queryParams, headers, body, successResp, errorResp)
	}

	result, err := hc.breaker.Execute(func() (interface{}, error) {
		success, failure, status, execErr := hc.doRequest(ctx, method, path, queryParams, headers, body, successResp, errorResp)
		if execErr != nil {
			if status == http.StatusTooManyRequests {
				execErr = fmt.Errorf("%w: %v", errRateLimited, execErr)
			} else if status >= 500 {
				execErr = fmt.Errorf("%w: %v", errServerError, execErr)
			}
			return attemptResult{failure: failure, status: status}, execErr
		}
		return attemptResult{success: success, failure: failure, status: status}, nil
	})

	outcome, _ := result.(attemptResult)
	return outcome.success, outcome.failure, outcome.status, err
}

// isTransient reports whether the failed attempt is worth retrying.
func isTransient(status int, err error) bool {
	if status == http.StatusTooManyRequests || status >= 500 {
		return true
	}
	// No status means the request never completed: DNS, dial or timeout.
	return status == 0 && err != nil && !errors.Is(err, context.Canceled)
}
