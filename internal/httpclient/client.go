// Package httpclient собирает исходящий HTTP-клиент с логированием запросов.
package httpclient

import (
	"log/slog"
	"net/http"
	"time"
)

// New возвращает *http.Client с общим таймаутом и логирующим транспортом.
func New(timeout time.Duration, logger *slog.Logger) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: RequestLogger(http.DefaultTransport, logger),
	}
}

// RequestLogger - обертка над RoundTripper для логирования исходящих запросов.
// Query-строка не логируется: в ней может оказаться ключ доступа.
func RequestLogger(next http.RoundTripper, logger *slog.Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		start := time.Now()

		resp, err := next.RoundTrip(r)

		duration := time.Since(start)
		if err != nil {
			logger.Debug("http request failed",
				"method", r.Method,
				"host", r.URL.Host,
				"path", r.URL.Path,
				"duration_ms", duration.Milliseconds(),
				"error", err,
			)
			return nil, err
		}

		logger.Debug("http request",
			"method", r.Method,
			"host", r.URL.Host,
			"path", r.URL.Path,
			"status", resp.StatusCode,
			"duration_ms", duration.Milliseconds(),
		)
		return resp, nil
	})
}

// roundTripperFunc позволяет использовать функцию как http.RoundTripper
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
