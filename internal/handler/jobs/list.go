// File: internal/handler/jobs/list.go
package jobs

import (
	"net/http"

	"job-portal/internal/api"
	"job-portal/internal/database"

	"github.com/labstack/echo/v4"
)

func ListJobsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		jobs, err := listJobs(c.Request().Context(), db)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.JobListResponse{Count: len(jobs), Jobs: jobs})
	}
}
