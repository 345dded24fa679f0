package main

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/classforge/classroom-backend/internal/config"
	"github.com/classforge/classroom-backend/internal/database"
	"github.com/classforge/classroom-backend/internal/logger"
	"github.com/classforge/classroom-backend/internal/model"
	"github.com/classforge/classroom-backend/internal/repository"
	"github.com/classforge/classroom-backend/internal/service"
)

const seedCount = 50

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	enrollRepo := repository.NewEnrollmentRepository(pool)

	if cfg.EnrollmentMode == config.EnrollmentModeHook {
		userRepo.AfterCreate(repository.DefaultEnrollmentHook())
	}
	userService := service.NewUserService(userRepo)

	fmt.Printf("=== Seeding %d Users ===\n", seedCount)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	created := 0
	for i := 1; i <= seedCount; i++ {
		user := &model.User{
			FirstName:    "Seed",
			LastName:     fmt.Sprintf("User%02d", i),
			UserName:     fmt.Sprintf("seed_user_%02d", i),
			Email:        fmt.Sprintf("seed_user_%02d@example.com", i),
			PasswordHash: string(hash),
		}

		if err := userService.Register(ctx, user); err != nil {
			if err == repository.ErrDuplicateUserName {
				fmt.Printf("Skipping %s: already exists\n", user.UserName)
				continue
			}
			log.Fatal().Err(err).Str("user_name", user.UserName).Msg("Failed to create user")
		}
		created++

		enrollments, err := enrollRepo.ListForUser(ctx, user.ID)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to list enrollments")
		}
		if len(enrollments) == 0 {
			log.Fatal().Int("user_id", user.ID).Msg("No default enrollment was created; check ENROLLMENT_MODE and migrations")
		}
	}

	fmt.Printf("Done. Created %d users, each enrolled in %s.\n", created, model.DefaultClassNumber)
}
