// File: internal/handler/health/ping.go
package health

import (
	"net/http"

	"job-portal/internal/api"
	"job-portal/internal/cache"
	"job-portal/internal/database"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PingHandler reports whether the database and the cache answer.
func PingHandler(db database.DB, c cache.Cache, logger *zap.Logger) echo.HandlerFunc {
	return func(ec echo.Context) error {
		ctx := ec.Request().Context()
		if err := db.Ping(ctx); err != nil {
			logger.Warn("database ping failed", zap.Error(err))
			return ec.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if err := c.Ping(ctx).Err(); err != nil {
			logger.Warn("cache ping failed", zap.Error(err))
			return ec.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
		}
		return ec.JSON(http.StatusOK, api.MessageResponse{Message: "pong"})
	}
}
