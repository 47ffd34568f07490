package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	bcryptadapter "github.com/ericfisherdev/invitegate/internal/adapter/driven/bcrypt"
	jwtadapter "github.com/ericfisherdev/invitegate/internal/adapter/driven/jwt"
	sqliteadapter "github.com/ericfisherdev/invitegate/internal/adapter/driven/sqlite"
	httphandler "github.com/ericfisherdev/invitegate/internal/adapter/driving/http"
	"github.com/ericfisherdev/invitegate/internal/application"
	"github.com/ericfisherdev/invitegate/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on missing required env vars).
	cfg, err := config.Load(config.DefaultEnvFiles...)
	if err != nil {
		return err
	}

	// 2. Structured JSON logging for every component.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"db_path", cfg.DBPath,
		"cors_origins", cfg.CORSOrigins,
		"bcrypt_cost", cfg.BcryptCost,
	)

	// 3. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Open database (dual reader/writer with WAL mode).
	db, err := sqliteadapter.NewDB(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()
	logger.Info("database opened", "path", db.Path())

	// 5. Run migrations on writer connection.
	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}
	logger.Info("migrations complete")

	// 6. Wire adapters.
	userStore := sqliteadapter.NewUserRepo(db)
	transactionStore := sqliteadapter.NewTransactionRepo(db)
	hasher := bcryptadapter.NewHasher(cfg.BcryptCost)
	issuer := jwtadapter.NewIssuer(cfg.JWTSecret)
	if hasher.Cost() != cfg.BcryptCost {
		logger.Warn("bcrypt cost out of range, clamped", "requested", cfg.BcryptCost, "effective", hasher.Cost())
	}

	// 7. Create application services.
	authSvc := application.NewAuthService(userStore, hasher, issuer, cfg.InviteCode, logger)
	accountSvc := application.NewAccountService(userStore, transactionStore, logger)

	// 8. Create HTTP handler with routes and middleware.
	apiHandler := httphandler.NewHandler(authSvc, accountSvc, issuer, logger)
	handler := httphandler.NewServeMux(apiHandler, logger, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// 9. Wait for shutdown signal or a listener failure.
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err, ok := <-serveErr:
		if ok {
			return err
		}
	}

	// 10. Graceful shutdown with 10s timeout to drain in-flight requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
	return nil
}
