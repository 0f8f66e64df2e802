// File: internal/model/job.go
package model

import "time"

type SalaryRange struct {
	Currency string  `json:"currency"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

type Job struct {
	ID          string       `db:"id" json:"id"`
	Title       string       `db:"title" json:"title"`
	Description string       `db:"description" json:"description"`
	Image       *string      `db:"image" json:"image,omitempty"`
	Active      bool         `db:"active" json:"active"`
	Location    *string      `db:"location" json:"location,omitempty"`
	Company     string       `db:"company" json:"company"`
	Salary      *SalaryRange `db:"salary" json:"salary,omitempty"`
	CreatedAt   time.Time    `db:"created" json:"created"`
	UpdatedAt   time.Time    `db:"updated_at" json:"updated_at"`
}

// JobPatch holds the fields of a partial job update; nil means unchanged.
type JobPatch struct {
	Title       *string
	Description *string
	Image       *string
	Location    *string
	Company     *string
	Salary      *SalaryRange
	Active      *bool
}
