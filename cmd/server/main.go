package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/classforge/classroom-backend/internal/config"
	"github.com/classforge/classroom-backend/internal/database"
	"github.com/classforge/classroom-backend/internal/handler"
	"github.com/classforge/classroom-backend/internal/logger"
	"github.com/classforge/classroom-backend/internal/repository"
	"github.com/classforge/classroom-backend/internal/router"
	"github.com/classforge/classroom-backend/internal/service"
	"github.com/classforge/classroom-backend/internal/validator"
	"github.com/classforge/classroom-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Str("enrollment_mode", string(cfg.EnrollmentMode)).
		Msg("Starting Classroom Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	enrollRepo := repository.NewEnrollmentRepository(pool)
	joinCodeRepo := repository.NewJoinCodeRepository(pool)

	// In hook mode the default enrollment runs inside the user-creation
	// transaction. In trigger mode the database does it.
	if cfg.EnrollmentMode == config.EnrollmentModeHook {
		userRepo.AfterCreate(repository.DefaultEnrollmentHook())
	}

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb)
	userService := service.NewUserService(userRepo)
	classService := service.NewClassService(classRepo)
	enrollmentService := service.NewEnrollmentService(enrollRepo, userRepo, joinCodeRepo, cfg, rdb, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:   handler.NewAuthHandler(authService, userService, enrollmentService),
		User:   handler.NewUserHandler(userService, authService),
		Class:  handler.NewClassHandler(classService),
		Roster: handler.NewRosterHandler(enrollmentService),
		WS:     handler.NewWSHandler(rdb, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	sweeper := worker.NewJoinCodeSweeper(joinCodeRepo, log)
	go sweeper.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, enrollmentService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
