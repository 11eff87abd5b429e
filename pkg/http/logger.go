package http

import (
	"github.com/breezy-weather/breezy-weather-sub005/pkg/log"
)

// HTTPLogger receives request lifecycle events from the client.
type HTTPLogger interface {
	// LogRequestRetry is called when backoff exists and a retry attempt is
	// about to be made.
	LogRequestRetry(method, url string, headers map[string]string, httpStatus int, err error, retryCount, maxRetries int)
}

// ZapHTTPLogger logs client retries through the application logger.
type ZapHTTPLogger struct{}

var _ HTTPLogger = ZapHTTPLogger{}

func (ZapHTTPLogger) LogRequestRetry(method, url string, _ map[string]string, httpStatus int, err error, retryCount, maxRetries int) {
	log.Warnw("retrying http request",
		"method", method,
		"url", url,
		"status", httpStatus,
		"error", err,
		"retry", retryCount,
		"max_retries", maxRetries,
	)
}
