// File: cmd/service/service.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"job-portal/internal/cache"
	"job-portal/internal/config"
	"job-portal/internal/database"
	"job-portal/internal/logger"
	"job-portal/internal/middleware"
	"job-portal/internal/router"
	"job-portal/internal/service"
	"job-portal/internal/validation"
	"job-portal/internal/worker"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const (
	shutdownTimeout = 10 * time.Second
	queuePerWorker  = 16
)

var (
	loadConfig      = config.Load
	newLogger       = logger.New
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = serveUntilSignal
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

// serveUntilSignal runs e until SIGINT or SIGTERM, then drains in-flight
// requests.
func serveUntilSignal(e *echo.Echo, addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newServer(d router.Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.NewValidator()
	e.HTTPErrorHandler = middleware.ErrorHandler(d.Logger)
	e.Use(echomw.Recover())
	// any origin, with credentials: the allowed origin is the caller's own
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOriginFunc:  func(string) (bool, error) { return true, nil },
		AllowCredentials: true,
	}))
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(middleware.Metrics())

	router.Setup(e, d)
	return e
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	zl, err := newLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx := context.Background()

	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	wp := newWorkerPool(cfg.WorkerCount, cfg.WorkerCount*queuePerWorker)
	defer wp.Stop()

	e := newServer(router.Deps{
		DB:          db,
		Cache:       rdb,
		JobCache:    cache.NewJobCache(rdb, cfg.CacheTTL),
		Pool:        wp,
		Credentials: service.NewCredentials(cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptSaltRounds),
		Logger:      zl,
	})

	zl.Info("starting server", zap.String("addr", cfg.Addr()))
	return startServer(e, cfg.Addr())
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
