package api

import (
	"encoding/json"
	"testing"

	"job-portal/internal/model"

	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	r := &SignupRequest{Email: "  John@Example.COM "}
	r.Normalize()
	require.Equal(t, "john@example.com", r.Email)

	l := &LoginRequest{Email: "A@B.io"}
	l.Normalize()
	require.Equal(t, "a@b.io", l.Email)
}

func TestCreateJobRequestJob(t *testing.T) {
	r := &CreateJobRequest{
		Title:       "t",
		Description: "d",
		Company:     "c",
		Salary:      &SalaryRequest{Currency: "sgd", Min: 1, Max: 2},
	}
	r.Normalize()
	j := r.Job()
	require.Equal(t, "SGD", j.Salary.Currency)
	require.Nil(t, j.Image)

	require.Nil(t, (&CreateJobRequest{}).Job().Salary)
}

func TestUpdateJobRequestPatch(t *testing.T) {
	active := false
	r := &UpdateJobRequest{Active: &active, Salary: &SalaryRequest{Currency: "usd"}}
	p := r.Patch()
	require.Nil(t, p.Title)
	require.False(t, *p.Active)
	require.Equal(t, "USD", p.Salary.Currency)
}

func TestProfileResponseHidesPassword(t *testing.T) {
	u := &model.User{ID: "u1", Email: "a@b.io", FirstName: "A", LastName: "B", PasswordHash: "secret-hash"}
	b, err := json.Marshal(NewProfileResponse(u))
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"u1","firstName":"A","lastName":"B","email":"a@b.io","appliedJobs":[]}`, string(b))
}
