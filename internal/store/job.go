// File: internal/store/job.go
package store

import (
	"context"
	"fmt"

	"job-portal/internal/database"
	"job-portal/internal/model"

	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, title, description, image, active, location, company, salary, created, updated_at`

func scanJob(row interface{ Scan(...any) error }) (*model.Job, error) {
	j := &model.Job{}
	if err := row.Scan(
		&j.ID,
		&j.Title,
		&j.Description,
		&j.Image,
		&j.Active,
		&j.Location,
		&j.Company,
		&j.Salary,
		&j.CreatedAt,
		&j.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return j, nil
}

func ListJobs(ctx context.Context, db database.DB) ([]model.Job, error) {
	rows, err := db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY created, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListJobs: %w", err)
	}
	defer rows.Close()

	jobs := []model.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("ListJobs scan: %w", err)
		}
		jobs = append(jobs, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListJobs rows: %w", err)
	}
	return jobs, nil
}

func GetJobByID(ctx context.Context, db database.DB, jobID string) (*model.Job, error) {
	row := db.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`,
		jobID,
	)
	j, err := scanJob(row)
	if err != nil {
		return nil, fmt.Errorf("GetJobByID: %w", translate(err))
	}
	return j, nil
}

// CreateJob inserts j as an active job and fills in id and timestamps.
func CreateJob(ctx context.Context, db database.DB, j *model.Job) (*model.Job, error) {
	j.ID = newID()
	j.Active = true
	row := db.QueryRow(ctx,
		`INSERT INTO jobs (id, title, description, image, active, location, company, salary)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created, updated_at`,
		j.ID,
		j.Title,
		j.Description,
		j.Image,
		j.Active,
		j.Location,
		j.Company,
		j.Salary,
	)
	if err := row.Scan(&j.CreatedAt, &j.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateJob: %w", err)
	}
	return j, nil
}

// UpdateJob applies the non-nil fields of p. A missing job yields ErrNotFound.
func UpdateJob(ctx context.Context, db database.DB, jobID string, p model.JobPatch) error {
	tag, err := db.Exec(ctx,
		`UPDATE jobs SET
		   title       = COALESCE($2, title),
		   description = COALESCE($3, description),
		   image       = COALESCE($4, image),
		   location    = COALESCE($5, location),
		   company     = COALESCE($6, company),
		   salary      = COALESCE($7, salary),
		   active      = COALESCE($8, active),
		   updated_at  = now()
		 WHERE id = $1`,
		jobID,
		p.Title,
		p.Description,
		p.Image,
		p.Location,
		p.Company,
		p.Salary,
		p.Active,
	)
	if err != nil {
		return fmt.Errorf("UpdateJob: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateJob: %w", ErrNotFound)
	}
	return nil
}

// DeleteJob removes the job and every application that references it in one
// transaction. It returns the number of applications removed.
func DeleteJob(ctx context.Context, db database.DB, jobID string) (int64, error) {
	var removed int64
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM applications WHERE job_id = $1`, jobID)
		if err != nil {
			return err
		}
		removed = tag.RowsAffected()

		tag, err = tx.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, jobID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("DeleteJob: %w", err)
	}
	return removed, nil
}
