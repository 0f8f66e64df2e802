// File: cmd/portalctl/main.go

// Command portalctl is a maintenance tool for the job-portal database.
//
//	portalctl getuser <email>
//	portalctl setrole <email> <user|admin>
//	portalctl cleardb
//	portalctl migrate <up|down>
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"job-portal/internal/config"
	"job-portal/internal/database"
	"job-portal/internal/logger"
	"job-portal/internal/model"
	"job-portal/internal/store"

	"go.uber.org/zap"
)

const usage = `usage:
  portalctl getuser <email>
  portalctl setrole <email> <user|admin>
  portalctl cleardb
  portalctl migrate <up|down>`

var errUsage = errors.New(usage)

var (
	loadConfig     = config.Load
	newLogger      = logger.New
	newPgxPool     = database.NewPgxPool
	getUserByEmail = store.GetUserByEmail
	updateUserRole = store.UpdateUserRole
	deleteAllUsers = store.DeleteAllUsers
	migrateUp      = database.RunMigrations
	migrateDown    = database.RollbackAll
	stdout         io.Writer = os.Stdout
	stderr         io.Writer = os.Stderr
	exitFunc                 = os.Exit
)

func run(args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	if err := checkArgs(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	zl, err := newLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()

	if args[0] == "migrate" {
		return runMigrate(zl, cfg.DatabaseURL, args[1])
	}

	ctx := context.Background()
	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	switch args[0] {
	case "getuser":
		return getUser(ctx, db, args[1])
	case "setrole":
		return setRole(ctx, db, zl, args[1], model.Role(args[2]))
	default:
		return clearDB(ctx, db, zl)
	}
}

func checkArgs(args []string) error {
	want := map[string]int{"getuser": 2, "setrole": 3, "cleardb": 1, "migrate": 2}
	n, ok := want[args[0]]
	if !ok || len(args) != n {
		return errUsage
	}
	if args[0] == "migrate" && args[1] != "up" && args[1] != "down" {
		return errUsage
	}
	if args[0] == "setrole" && !model.Role(args[2]).Valid() {
		return fmt.Errorf("invalid role %q: expected user or admin", args[2])
	}
	return nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func getUser(ctx context.Context, db database.DB, email string) error {
	u, err := getUserByEmail(ctx, db, normalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("user %s not found", email)
	}
	if err != nil {
		return err
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(u)
}

func setRole(ctx context.Context, db database.DB, zl *zap.Logger, email string, role model.Role) error {
	email = normalizeEmail(email)
	err := updateUserRole(ctx, db, email, role)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("user %s not found", email)
	}
	if err != nil {
		return err
	}
	zl.Info("role updated", zap.String("email", email), zap.String("role", string(role)))
	fmt.Fprintf(stdout, "%s is now %s\n", email, role)
	return nil
}

func clearDB(ctx context.Context, db database.DB, zl *zap.Logger) error {
	n, err := deleteAllUsers(ctx, db)
	if err != nil {
		return err
	}
	zl.Warn("users deleted", zap.Int64("count", n))
	fmt.Fprintf(stdout, "deleted %d users\n", n)
	return nil
}

// runMigrate applies or reverts every embedded migration.
func runMigrate(zl *zap.Logger, dbURL, direction string) error {
	apply := migrateUp
	if direction == "down" {
		apply = migrateDown
	}
	if err := apply(dbURL); err != nil {
		return fmt.Errorf("migrate %s: %w", direction, err)
	}
	zl.Info("migrations applied", zap.String("direction", direction))
	fmt.Fprintf(stdout, "migrate %s done\n", direction)
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(stderr, err)
		exitFunc(1)
	}
}
