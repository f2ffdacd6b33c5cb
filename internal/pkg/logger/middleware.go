package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware logs one structured line per request
func EchoMiddleware(l *AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			fields := []Field{
				String("method", c.Request().Method),
				String("path", path),
				Int("status", c.Response().Status),
				String("client_ip", c.RealIP()),
				Duration("latency", time.Since(start)),
			}
			if rid := c.Response().Header().Get(echo.HeaderXRequestID); rid != "" {
				fields = append(fields, String("request_id", rid))
			}
			if err != nil {
				fields = append(fields, Err(err))
				l.Error("request failed", fields...)
				return nil
			}

			l.Info("request completed", fields...)
			return nil
		}
	}
}
