package middleware

import (
	"cmp"
	"errors"
	"slices"
	"time"

	"github.com/labstack/echo/v4"

	"linkguard/internal/metrics"
)

type HTTPRecorder interface {
	RecordHTTP(m metrics.HTTPMetric)
}

// Metrics records one HTTPMetric per request. Requests whose route matches
// one of skip are not recorded.
func Metrics(recorder HTTPRecorder, skip ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			path := cmp.Or(c.Path(), "/")
			if slices.Contains(skip, path) {
				return err
			}

			statusCode := c.Response().Status
			var errStr string
			if err != nil {
				errStr = err.Error()
				var he *echo.HTTPError
				if errors.As(err, &he) {
					statusCode = he.Code
				}
			}

			recorder.RecordHTTP(metrics.HTTPMetric{
				Time:       start,
				Method:     c.Request().Method,
				Path:       path,
				StatusCode: statusCode,
				DurationMs: float64(time.Since(start).Microseconds()) / 1000.0,
				ClientIP:   c.RealIP(),
				Error:      errStr,
			})

			return err
		}
	}
}
