// File: internal/handler/jobs/get.go
package jobs

import (
	"context"
	"errors"
	"net/http"
	"time"

	"job-portal/internal/api"
	"job-portal/internal/database"
	"job-portal/internal/store"
	"job-portal/internal/worker"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const fillTimeout = 2 * time.Second

// GetJobHandler serves a job from the cache, falling back to the store. A miss
// schedules a cache fill on pool; the response never waits for it. The fill
// reads the job again when it runs, so a queued fill cannot resurrect a job
// deleted in the meantime.
func GetJobHandler(db database.DB, jc JobCache, pool worker.Pool, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		id := c.Param("id")

		cached, err := jc.GetJob(ctx, id)
		if err != nil {
			logger.Warn("job cache read failed", zap.String("job_id", id), zap.Error(err))
		}
		if cached != nil {
			return c.JSON(http.StatusOK, cached)
		}

		job, err := getJobByID(ctx, db, id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: errJobNotFound})
		}
		if err != nil {
			return err
		}

		scheduleFill(ctx, db, jc, pool, logger, id)
		return c.JSON(http.StatusOK, job)
	}
}

func scheduleFill(ctx context.Context, db database.DB, jc JobCache, pool worker.Pool, logger *zap.Logger, id string) {
	bg := context.WithoutCancel(ctx)
	ok := pool.TrySubmit(func() {
		fillCtx, cancel := context.WithTimeout(bg, fillTimeout)
		defer cancel()

		job, err := getJobByID(fillCtx, db, id)
		if errors.Is(err, store.ErrNotFound) {
			return
		}
		if err != nil {
			logger.Warn("job cache fill read failed", zap.String("job_id", id), zap.Error(err))
			return
		}
		if err := jc.SetJob(fillCtx, job); err != nil {
			logger.Warn("job cache fill failed", zap.String("job_id", id), zap.Error(err))
		}
	})
	if !ok {
		logger.Debug("job cache fill dropped", zap.String("job_id", id))
	}
}
