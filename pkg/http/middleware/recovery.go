package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	applogger "PriceFeed/pkg/logger"

	"github.com/labstack/echo/v4"
)

var defaultPanicBody = map[string]interface{}{
	"status":  http.StatusInternalServerError,
	"message": "Internal Server Error",
}

// Recover returns recovery middleware answering 500 with the generic envelope.
func Recover(l *applogger.Logger) echo.MiddlewareFunc {
	return RecoverWithBody(l, defaultPanicBody)
}

// RecoverWithBody converts a panic into a 500 carrying body. Routes with their
// own error contract install it in front of their handler.
func RecoverWithBody(l *applogger.Logger, body interface{}) echo.MiddlewareFunc {
	if l == nil {
		l = applogger.Nop()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}
				perr, ok := r.(error)
				if !ok {
					perr = fmt.Errorf("%v", r)
				}
				l.Error("panic recovered",
					applogger.String("path", c.Path()),
					applogger.Error(perr),
					applogger.String("stack", string(debug.Stack())),
				)
				if c.Response().Committed {
					return
				}
				err = c.JSON(http.StatusInternalServerError, body)
			}()
			return next(c)
		}
	}
}
