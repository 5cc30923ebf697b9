package middleware

import (
	"time"

	xlogger "github.com/atarantas86/edgefinder2/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RequestLogging logs one line per request through the structured logger.
// A nil logger disables request logging.
func RequestLogging(l *xlogger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			err := next(c)

			if l != nil {
				l.Info("http request",
					xlogger.String("method", req.Method),
					xlogger.String("uri", req.RequestURI),
					xlogger.String("remote", req.RemoteAddr),
					xlogger.Int("status", res.Status),
					xlogger.Duration("latency", time.Since(start)),
				)
			}
			return err
		}
	}
}
