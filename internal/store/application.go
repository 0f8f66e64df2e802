// File: internal/store/application.go
package store

import (
	"context"
	"fmt"

	"job-portal/internal/database"
	"job-portal/internal/model"

	"github.com/jackc/pgx/v5"
)

const applicationColumns = `id, job_id, user_id, first_name, last_name, cover_letter, state, created, updated_at`

func ApplicationExists(ctx context.Context, db database.DB, jobID, userID string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM applications WHERE job_id = $1 AND user_id = $2)`,
		jobID,
		userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("ApplicationExists: %w", err)
	}
	return exists, nil
}

// CreateApplication inserts a pending application. A second application for
// the same job and user yields ErrDuplicate.
func CreateApplication(ctx context.Context, db database.Querier, a *model.JobApplication) (*model.JobApplication, error) {
	a.ID = newID()
	a.State = model.ApplicationPending
	row := db.QueryRow(ctx,
		`INSERT INTO applications (id, job_id, user_id, first_name, last_name, cover_letter, state)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created, updated_at`,
		a.ID,
		a.JobID,
		a.UserID,
		a.FirstName,
		a.LastName,
		a.CoverLetter,
		a.State,
	)
	if err := row.Scan(&a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateApplication: %w", translate(err))
	}
	return a, nil
}

// ApplyForJob creates a pending application and records the job on the
// applicant's profile in one transaction.
func ApplyForJob(ctx context.Context, db database.DB, a *model.JobApplication) (*model.JobApplication, error) {
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		if _, err := CreateApplication(ctx, tx, a); err != nil {
			return err
		}
		return AppendAppliedJob(ctx, tx, a.UserID, a.JobID)
	})
	if err != nil {
		return nil, fmt.Errorf("ApplyForJob: %w", err)
	}
	return a, nil
}

func ListApplicationsByUser(ctx context.Context, db database.DB, userID string) ([]model.JobApplication, error) {
	rows, err := db.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE user_id = $1 ORDER BY created, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListApplicationsByUser: %w", err)
	}
	defer rows.Close()

	apps := []model.JobApplication{}
	for rows.Next() {
		var a model.JobApplication
		if err := rows.Scan(
			&a.ID,
			&a.JobID,
			&a.UserID,
			&a.FirstName,
			&a.LastName,
			&a.CoverLetter,
			&a.State,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListApplicationsByUser scan: %w", err)
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListApplicationsByUser rows: %w", err)
	}
	return apps, nil
}
