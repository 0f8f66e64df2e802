// File: internal/middleware/errors.go
package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"job-portal/internal/api"
	"job-portal/internal/validation"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorHandler answers errors returned by handlers. Client errors keep their
// status; everything else is logged and reported as a bare 500.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			code int
			body any
		)
		var verr *validation.Error
		var he *echo.HTTPError
		switch {
		case errors.As(err, &verr):
			code, body = http.StatusBadRequest, api.Errors(verr.Messages...)
		case errors.As(err, &he) && he.Code < http.StatusInternalServerError:
			code, body = he.Code, api.ErrorResponse{Message: fmt.Sprint(he.Message)}
		default:
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Error(err),
			)
			code, body = http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error"}
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, body)
		}
		if err != nil {
			logger.Error("write error response", zap.Error(err))
		}
	}
}
