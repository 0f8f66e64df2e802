// File: internal/store/user.go
package store

import (
	"context"
	"fmt"

	"job-portal/internal/database"
	"job-portal/internal/model"

	"github.com/google/uuid"
)

const userColumns = `id, email, first_name, last_name, password_hash, role, applied_jobs`

var newID = uuid.NewString

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.PasswordHash,
		&u.Role,
		&u.AppliedJobs,
	); err != nil {
		return nil, err
	}
	if u.AppliedJobs == nil {
		u.AppliedJobs = []string{}
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", translate(err))
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", translate(err))
	}
	return u, nil
}

// CreateUser inserts u with a fresh id. A taken email yields ErrDuplicate.
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	if u.Role == "" {
		u.Role = model.RoleUser
	}
	if u.AppliedJobs == nil {
		u.AppliedJobs = []string{}
	}
	u.ID = newID()
	_, err := db.Exec(ctx,
		`INSERT INTO users (id, email, first_name, last_name, password_hash, role, applied_jobs)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID,
		u.Email,
		u.FirstName,
		u.LastName,
		u.PasswordHash,
		u.Role,
		u.AppliedJobs,
	)
	if err != nil {
		return nil, fmt.Errorf("CreateUser: %w", translate(err))
	}
	return u, nil
}

func UpdateUserRole(ctx context.Context, db database.DB, email string, role model.Role) error {
	tag, err := db.Exec(ctx,
		`UPDATE users SET role = $1 WHERE email = $2`,
		role,
		email,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserRole: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateUserRole: %w", ErrNotFound)
	}
	return nil
}

// AppendAppliedJob records jobID on the user's applied-jobs list.
func AppendAppliedJob(ctx context.Context, db database.Querier, userID, jobID string) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET applied_jobs = array_append(applied_jobs, $1)
		 WHERE id = $2 AND NOT ($1 = ANY(applied_jobs))`,
		jobID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("AppendAppliedJob: %w", err)
	}
	return nil
}

// DeleteAllUsers removes every user. Applications are left in place.
func DeleteAllUsers(ctx context.Context, db database.DB) (int64, error) {
	tag, err := db.Exec(ctx, `DELETE FROM users`)
	if err != nil {
		return 0, fmt.Errorf("DeleteAllUsers: %w", err)
	}
	return tag.RowsAffected(), nil
}
