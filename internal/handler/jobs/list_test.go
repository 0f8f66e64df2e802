package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"job-portal/internal/api"
	"job-portal/internal/database"
	"job-portal/internal/model"

	"github.com/stretchr/testify/require"
)

func TestListJobsHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		listJobs = func(context.Context, database.DB) ([]model.Job, error) {
			return []model.Job{*sampleJob()}, nil
		}
		ctx, rec := newCtx(http.MethodGet, "", "")
		require.NoError(t, ListJobsHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.JobListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, 1, resp.Count)
		require.Equal(t, jobID, resp.Jobs[0].ID)
	})

	t.Run("empty", func(t *testing.T) {
		t.Cleanup(restore)
		listJobs = func(context.Context, database.DB) ([]model.Job, error) { return []model.Job{}, nil }
		ctx, rec := newCtx(http.MethodGet, "", "")
		require.NoError(t, ListJobsHandler(nil)(ctx))
		require.JSONEq(t, `{"count":0,"jobs":[]}`, rec.Body.String())
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		listJobs = func(context.Context, database.DB) ([]model.Job, error) { return nil, errors.New("db") }
		ctx, _ := newCtx(http.MethodGet, "", "")
		require.Error(t, ListJobsHandler(nil)(ctx))
	})
}
