// File: internal/handler/jobs/apply.go
package jobs

import (
	"errors"
	"net/http"

	"job-portal/internal/api"
	"job-portal/internal/database"
	"job-portal/internal/metrics"
	"job-portal/internal/middleware"
	"job-portal/internal/model"
	"job-portal/internal/store"
	"job-portal/internal/validation"

	"github.com/labstack/echo/v4"
)

const errAlreadyApplied = "Already applied for this job"

// ApplyHandler files an application by the authenticated user. Checks run in
// order: duplicate application, job existence, job active.
func ApplyHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.Claims(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Unauthorized: Missing token"})
		}

		var req api.ApplicationRequest
		if err := validation.Bind(c, validation.Application, &req); err != nil {
			return validation.Respond(c, err)
		}
		ctx := c.Request().Context()
		jobID := c.Param("id")
		userID := claims.UserID()

		exists, err := applicationExists(ctx, db, jobID, userID)
		if err != nil {
			return err
		}
		if exists {
			return c.JSON(http.StatusConflict, api.Errors(errAlreadyApplied))
		}

		job, err := getJobByID(ctx, db, jobID)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.Errors(errJobNotFound))
		}
		if err != nil {
			return err
		}
		if !job.Active {
			return c.JSON(http.StatusConflict, api.Errors("Job not active"))
		}

		app, err := applyForJob(ctx, db, &model.JobApplication{
			JobID:       jobID,
			UserID:      userID,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			CoverLetter: req.CoverLetter,
		})
		if errors.Is(err, store.ErrDuplicate) {
			return c.JSON(http.StatusConflict, api.Errors(errAlreadyApplied))
		}
		if err != nil {
			return err
		}

		metrics.JobApplicationsCreated.Inc()
		return c.JSON(http.StatusCreated, api.ApplyResponse{ID: app.ID, Message: "Successfully applied for the job"})
	}
}
