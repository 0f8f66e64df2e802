// File: internal/handler/jobs/update.go
package jobs

import (
	"errors"
	"net/http"

	"job-portal/internal/api"
	"job-portal/internal/database"
	"job-portal/internal/store"
	"job-portal/internal/validation"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UpdateJobHandler applies a partial update and answers with the job as it
// was before the update.
func UpdateJobHandler(db database.DB, jc JobCache, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateJobRequest
		if err := validation.Bind(c, validation.JobUpdate, &req); err != nil {
			return validation.Respond(c, err)
		}
		ctx := c.Request().Context()
		id := c.Param("id")

		existing, err := getJobByID(ctx, db, id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.Errors(errJobNotFound))
		}
		if err != nil {
			return err
		}

		err = updateJob(ctx, db, id, req.Patch())
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusInternalServerError, api.Errors("Failed to update the job"))
		}
		if err != nil {
			return err
		}

		if err := jc.Invalidate(ctx, id); err != nil {
			logger.Warn("job cache invalidate failed", zap.String("job_id", id), zap.Error(err))
		}
		return c.JSON(http.StatusOK, existing)
	}
}
