package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"costera/internal/pkg/logger"
	"costera/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack and
// returns a generic 500 so the process keeps serving.
func PanicRecoveryMiddleware(l *logger.AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}
					l.Error("panic recovered",
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.Err(err),
						logger.String("stack", string(debug.Stack())))
					_ = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "internal error")
				}
			}()
			return next(c)
		}
	}
}
