// File: internal/model/application.go
package model

import "time"

type ApplicationState string

const (
	ApplicationPending  ApplicationState = "pending"
	ApplicationApproved ApplicationState = "approved"
	ApplicationRejected ApplicationState = "rejected"
)

type JobApplication struct {
	ID          string           `db:"id" json:"id"`
	JobID       string           `db:"job_id" json:"jobId"`
	UserID      string           `db:"user_id" json:"userId"`
	FirstName   string           `db:"first_name" json:"firstName"`
	LastName    string           `db:"last_name" json:"lastName"`
	CoverLetter *string          `db:"cover_letter" json:"coverLetter,omitempty"`
	State       ApplicationState `db:"state" json:"state"`
	CreatedAt   time.Time        `db:"created" json:"created"`
	UpdatedAt   time.Time        `db:"updated_at" json:"updated_at"`
}
