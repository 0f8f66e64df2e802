// File: internal/handler/jobs/create.go
package jobs

import (
	"net/http"

	"job-portal/internal/api"
	"job-portal/internal/database"
	"job-portal/internal/validation"

	"github.com/labstack/echo/v4"
)

func CreateJobHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateJobRequest
		if err := validation.Bind(c, validation.JobCreate, &req); err != nil {
			return validation.Respond(c, err)
		}

		job, err := createJob(c.Request().Context(), db, req.Job())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, job)
	}
}
