// File: internal/handler/jobs/jobs.go
package jobs

import (
	"context"
	"net/http"

	"job-portal/internal/api"
	"job-portal/internal/model"
	"job-portal/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// JobCache is the read-through cache in front of the jobs table.
type JobCache interface {
	GetJob(ctx context.Context, id string) (*model.Job, error)
	SetJob(ctx context.Context, job *model.Job) error
	Invalidate(ctx context.Context, id string) error
}

var (
	listJobs          = store.ListJobs
	getJobByID        = store.GetJobByID
	createJob         = store.CreateJob
	updateJob         = store.UpdateJob
	deleteJob         = store.DeleteJob
	applicationExists = store.ApplicationExists
	applyForJob       = store.ApplyForJob
)

const errJobNotFound = "Job not found"

// RequireValidID answers 404 for :id values that are not canonical UUIDs.
func RequireValidID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if _, err := uuid.Parse(id); err != nil || len(id) != 36 {
			return c.JSON(http.StatusNotFound, api.Errors("Invalid job ID"))
		}
		return next(c)
	}
}
