// File: internal/api/job_request.go
package api

import (
	"strings"

	"job-portal/internal/model"
)

type SalaryRequest struct {
	Currency string  `json:"currency" validate:"len=3" example:"sgd"`
	Min      float64 `json:"min" example:"6000"`
	Max      float64 `json:"max" example:"6500"`
}

func (s *SalaryRequest) toModel() *model.SalaryRange {
	if s == nil {
		return nil
	}
	return &model.SalaryRange{
		Currency: strings.ToUpper(s.Currency),
		Min:      s.Min,
		Max:      s.Max,
	}
}

type CreateJobRequest struct {
	Title       string         `json:"title" example:"Software Engineer"`
	Description string         `json:"description" example:"Exciting job opportunity!"`
	Image       *string        `json:"image,omitempty" validate:"omitempty,url" example:"https://example.com/image.jpg"`
	Location    *string        `json:"location,omitempty" example:"Singapore"`
	Company     string         `json:"company" example:"Tech Co."`
	Salary      *SalaryRequest `json:"salary,omitempty" validate:"omitempty"`
}

func (r *CreateJobRequest) Normalize() {
	if r.Salary != nil {
		r.Salary.Currency = strings.ToUpper(r.Salary.Currency)
	}
}

// Job builds the document to persist. Active and timestamps are set by the store.
func (r *CreateJobRequest) Job() *model.Job {
	return &model.Job{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Location:    r.Location,
		Company:     r.Company,
		Salary:      r.Salary.toModel(),
	}
}

type UpdateJobRequest struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Image       *string        `json:"image,omitempty" validate:"omitempty,url"`
	Location    *string        `json:"location,omitempty"`
	Company     *string        `json:"company,omitempty"`
	Salary      *SalaryRequest `json:"salary,omitempty" validate:"omitempty"`
	Active      *bool          `json:"active,omitempty"`
}

func (r *UpdateJobRequest) Normalize() {
	if r.Salary != nil {
		r.Salary.Currency = strings.ToUpper(r.Salary.Currency)
	}
}

func (r *UpdateJobRequest) Patch() model.JobPatch {
	return model.JobPatch{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Location:    r.Location,
		Company:     r.Company,
		Salary:      r.Salary.toModel(),
		Active:      r.Active,
	}
}
