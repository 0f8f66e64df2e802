package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"job-portal/internal/database"
	"job-portal/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestApplicationExists(t *testing.T) {
	for _, want := range []bool{true, false} {
		db := &database.FakeDB{QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			require.Equal(t, []any{"j1", "u1"}, args)
			return fakeRow{values: []any{want}}
		}}
		got, err := ApplicationExists(context.Background(), db, "j1", "u1")
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeRow{scanErr: errors.New("boom")}
	}}
	_, err := ApplicationExists(context.Background(), db, "j1", "u1")
	require.Error(t, err)
}

func TestCreateApplication(t *testing.T) {
	now := time.Now().UTC()

	t.Run("ok is pending", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			gotArgs = args
			return fakeRow{values: []any{now, now}}
		}}
		a, err := CreateApplication(context.Background(), db, &model.JobApplication{
			JobID: "j1", UserID: "u1", FirstName: "John", LastName: "Doe",
		})
		require.NoError(t, err)
		require.NotEmpty(t, a.ID)
		require.Equal(t, model.ApplicationPending, a.State)
		require.Equal(t, model.ApplicationPending, gotArgs[6])
		require.Nil(t, gotArgs[5].(*string))
	})

	t.Run("unique violation", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return fakeRow{scanErr: &pgconn.PgError{Code: "23505"}}
		}}
		_, err := CreateApplication(context.Background(), db, &model.JobApplication{})
		require.ErrorIs(t, err, ErrDuplicate)
	})
}

func TestListApplicationsByUser(t *testing.T) {
	now := time.Now().UTC()
	row := []any{"a1", "j1", "u1", "John", "Doe", ptr("hire me"), model.ApplicationPending, now, now}

	rows := &fakeRows{data: [][]any{row}}
	db := &database.FakeDB{QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
		require.Equal(t, []any{"u1"}, args)
		return rows, nil
	}}
	apps, err := ListApplicationsByUser(context.Background(), db, "u1")
	require.NoError(t, err)
	require.Len(t, apps, 1)
	require.Equal(t, "hire me", *apps[0].CoverLetter)

	db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("db") }
	_, err = ListApplicationsByUser(context.Background(), db, "u1")
	require.Error(t, err)

	db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
		return &fakeRows{data: [][]any{row}, scanErr: errors.New("scan")}, nil
	}
	_, err = ListApplicationsByUser(context.Background(), db, "u1")
	require.Error(t, err)
}

func TestApplyForJob(t *testing.T) {
	now := time.Now().UTC()

	t.Run("creates and records in one transaction", func(t *testing.T) {
		var committed bool
		var appended []any
		tx := &database.FakeTx{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row { return fakeRow{values: []any{now, now}} },
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				appended = args
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
			CommitFn: func(context.Context) error { committed = true; return nil },
		}
		db := &database.FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil }}

		a, err := ApplyForJob(context.Background(), db, &model.JobApplication{JobID: "j1", UserID: "u1"})
		require.NoError(t, err)
		require.NotEmpty(t, a.ID)
		require.True(t, committed)
		require.Equal(t, []any{"j1", "u1"}, appended)
	})

	t.Run("duplicate rolls back", func(t *testing.T) {
		var rolledBack bool
		tx := &database.FakeTx{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return fakeRow{scanErr: &pgconn.PgError{Code: "23505"}}
			},
			RollbackFn: func(context.Context) error { rolledBack = true; return nil },
		}
		db := &database.FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil }}

		_, err := ApplyForJob(context.Background(), db, &model.JobApplication{JobID: "j1", UserID: "u1"})
		require.ErrorIs(t, err, ErrDuplicate)
		require.True(t, rolledBack)
	})

	t.Run("append failure rolls back", func(t *testing.T) {
		var committed bool
		tx := &database.FakeTx{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row { return fakeRow{values: []any{now, now}} },
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("boom")
			},
			CommitFn: func(context.Context) error { committed = true; return nil },
		}
		db := &database.FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil }}

		_, err := ApplyForJob(context.Background(), db, &model.JobApplication{JobID: "j1", UserID: "u1"})
		require.Error(t, err)
		require.False(t, committed)
	})
}
