package jobs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"job-portal/internal/middleware"
	"job-portal/internal/model"
	"job-portal/internal/service"
	"job-portal/internal/store"
	"job-portal/internal/validation"
	"job-portal/internal/worker"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const jobID = "8d3e4f4a-3b7c-4f0e-9d45-6c1a2b3c4d5e"

func restore() {
	listJobs = store.ListJobs
	getJobByID = store.GetJobByID
	createJob = store.CreateJob
	updateJob = store.UpdateJob
	deleteJob = store.DeleteJob
	applicationExists = store.ApplicationExists
	applyForJob = store.ApplyForJob
}

func newCtx(method, body, id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validation.NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/api/jobs", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/api/jobs", nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetPath("/api/jobs/:id")
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

func withUser(c echo.Context, userID string) {
	c.Set(middleware.ContextUserKey, &service.CustomClaims{
		Role:             model.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID},
	})
}

func sampleJob() *model.Job {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return &model.Job{
		ID:          jobID,
		Title:       "Software Engineer",
		Description: "Exciting job opportunity!",
		Active:      true,
		Company:     "Tech Co.",
		Salary:      &model.SalaryRange{Currency: "SGD", Min: 6000, Max: 6500},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

type fakeCache struct {
	job           *model.Job
	getErr        error
	setErr        error
	invalidateErr error
	set           []*model.Job
	invalidated   []string
}

func (f *fakeCache) GetJob(context.Context, string) (*model.Job, error) {
	return f.job, f.getErr
}

func (f *fakeCache) SetJob(_ context.Context, j *model.Job) error {
	f.set = append(f.set, j)
	return f.setErr
}

func (f *fakeCache) Invalidate(_ context.Context, id string) error {
	f.invalidated = append(f.invalidated, id)
	return f.invalidateErr
}

// inlinePool runs tasks synchronously so tests can observe them.
type inlinePool struct {
	full bool
	ran  int
}

func (p *inlinePool) TrySubmit(t worker.Task) bool {
	if p.full {
		return false
	}
	p.ran++
	t()
	return true
}
func (p *inlinePool) Stop() {}

// queuedPool holds tasks until drain, like a backed-up worker queue.
type queuedPool struct {
	tasks []worker.Task
}

func (p *queuedPool) TrySubmit(t worker.Task) bool {
	p.tasks = append(p.tasks, t)
	return true
}
func (p *queuedPool) Stop() {}

func (p *queuedPool) drain() {
	for _, t := range p.tasks {
		t()
	}
	p.tasks = nil
}

func TestRequireValidID(t *testing.T) {
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	for _, id := range []string{"123", "not-a-uuid", "{" + jobID + "}", "urn:uuid:" + jobID} {
		t.Run(id, func(t *testing.T) {
			ctx, rec := newCtx(http.MethodGet, "", id)
			require.NoError(t, RequireValidID(next)(ctx))
			require.Equal(t, http.StatusNotFound, rec.Code)
			require.JSONEq(t, `{"errors":["Invalid job ID"]}`, rec.Body.String())
		})
	}

	ctx, rec := newCtx(http.MethodGet, "", jobID)
	require.NoError(t, RequireValidID(next)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
}
