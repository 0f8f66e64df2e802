// File: internal/handler/jobs/delete.go
package jobs

import (
	"errors"
	"net/http"

	"job-portal/internal/api"
	"job-portal/internal/database"
	"job-portal/internal/store"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// DeleteJobHandler removes a job together with its applications.
func DeleteJobHandler(db database.DB, jc JobCache, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		id := c.Param("id")

		removed, err := deleteJob(ctx, db, id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.Errors(errJobNotFound))
		}
		if err != nil {
			return err
		}

		if err := jc.Invalidate(ctx, id); err != nil {
			logger.Warn("job cache invalidate failed", zap.String("job_id", id), zap.Error(err))
		}
		logger.Info("job deleted", zap.String("job_id", id), zap.Int64("applications_removed", removed))
		return c.NoContent(http.StatusNoContent)
	}
}
