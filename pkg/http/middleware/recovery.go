package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	xlogger "github.com/atarantas86/edgefinder2/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Recover converts handler panics into a 500 response. The stack goes to
// the structured logger; a nil logger drops it.
func Recover(l *xlogger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}
					if l != nil {
						l.Error("panic recovered",
							xlogger.Error(err),
							xlogger.String("stack", string(debug.Stack())),
						)
					}
					_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
						"status":  http.StatusInternalServerError,
						"message": "Internal Server Error",
					})
				}
			}()
			return next(c)
		}
	}
}
