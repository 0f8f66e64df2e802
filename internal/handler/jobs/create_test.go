package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"job-portal/internal/database"
	"job-portal/internal/model"

	"github.com/stretchr/testify/require"
)

func TestCreateJobHandler(t *testing.T) {
	const body = `{"title":"Software Engineer","description":"Exciting job opportunity!","company":"Tech Co.","image":"https://example.com/image.jpg","salary":{"currency":"sgd","min":6000,"max":6500}}`

	t.Run("created with upper-cased currency", func(t *testing.T) {
		t.Cleanup(restore)
		createJob = func(_ context.Context, _ database.DB, j *model.Job) (*model.Job, error) {
			j.ID = jobID
			j.Active = true
			j.CreatedAt = time.Now()
			return j, nil
		}
		ctx, rec := newCtx(http.MethodPost, body, "")
		require.NoError(t, CreateJobHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)

		var got model.Job
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Equal(t, jobID, got.ID)
		require.Equal(t, "SGD", got.Salary.Currency)
		require.True(t, got.Active)
		require.Equal(t, "https://example.com/image.jpg", *got.Image)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newCtx(http.MethodPost, `{"title":"t","description":"d","company":"c","salaryMin":1}`, "")
		require.NoError(t, CreateJobHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "errors")
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		createJob = func(context.Context, database.DB, *model.Job) (*model.Job, error) {
			return nil, errors.New("db")
		}
		ctx, _ := newCtx(http.MethodPost, body, "")
		require.Error(t, CreateJobHandler(nil)(ctx))
	})
}
