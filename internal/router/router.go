// File: internal/router/router.go
package router

import (
	"job-portal/internal/cache"
	"job-portal/internal/database"
	"job-portal/internal/handler/auth"
	"job-portal/internal/handler/health"
	"job-portal/internal/handler/jobs"
	"job-portal/internal/handler/users"
	"job-portal/internal/middleware"
	"job-portal/internal/model"
	"job-portal/internal/service"
	"job-portal/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Deps are the shared resources the handlers run against.
type Deps struct {
	DB          database.DB
	Cache       cache.Cache
	JobCache    jobs.JobCache
	Pool        worker.Pool
	Credentials *service.Credentials
	Logger      *zap.Logger
}

// Setup registers every route and its middleware.
func Setup(e *echo.Echo, d Deps) {
	requireUser := middleware.RequireUser(d.Credentials)
	requireAdmin := middleware.RequireRole(d.Credentials, model.RoleAdmin)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.GET("/ping", health.PingHandler(d.DB, d.Cache, d.Logger))

	apiAuth := api.Group("/auth")
	apiAuth.POST("/signup", auth.SignupHandler(d.DB, d.Credentials))
	apiAuth.POST("/login", auth.LoginHandler(d.DB, d.Credentials))

	// :id is checked before authentication
	apiJobs := api.Group("/jobs")
	apiJobs.GET("", jobs.ListJobsHandler(d.DB))
	apiJobs.POST("", jobs.CreateJobHandler(d.DB), requireAdmin)
	apiJobs.GET("/:id", jobs.GetJobHandler(d.DB, d.JobCache, d.Pool, d.Logger), jobs.RequireValidID)
	apiJobs.PUT("/:id", jobs.UpdateJobHandler(d.DB, d.JobCache, d.Logger), jobs.RequireValidID, requireAdmin)
	apiJobs.DELETE("/:id", jobs.DeleteJobHandler(d.DB, d.JobCache, d.Logger), jobs.RequireValidID, requireAdmin)
	apiJobs.POST("/:id/apply", jobs.ApplyHandler(d.DB), jobs.RequireValidID, requireUser)

	apiUser := api.Group("/user", requireUser)
	apiUser.GET("/profile", users.ProfileHandler(d.DB))
	apiUser.GET("/applied-jobs", users.AppliedJobsHandler(d.DB))
}
