// File: internal/api/responses.go
package api

import "job-portal/internal/model"

type MessageResponse struct {
	Message string `json:"message" example:"User registered successfully."`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type JobListResponse struct {
	Count int         `json:"count"`
	Jobs  []model.Job `json:"jobs"`
}

type ApplyResponse struct {
	ID      string `json:"id"`
	Message string `json:"message" example:"Successfully applied for the job"`
}

type ProfileResponse struct {
	ID          string   `json:"id"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	AppliedJobs []string `json:"appliedJobs"`
}

func NewProfileResponse(u *model.User) ProfileResponse {
	applied := u.AppliedJobs
	if applied == nil {
		applied = []string{}
	}
	return ProfileResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		AppliedJobs: applied,
	}
}

type ApplicationsResponse struct {
	Applications []model.JobApplication `json:"applications"`
}
