package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/classforge/classroom-backend/internal/config"
	"github.com/classforge/classroom-backend/internal/database"
	"github.com/classforge/classroom-backend/internal/logger"
	"github.com/classforge/classroom-backend/internal/repository"
)

func main() {
	var userName string
	var demote bool
	flag.StringVar(&userName, "user", "", "User name of the account to promote")
	flag.BoolVar(&demote, "demote", false, "Clear the admin flag instead of setting it")
	flag.Parse()

	if userName == "" {
		fmt.Println("Usage: promote-admin -user <user_name> [-demote]")
		return
	}

	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)

	user, err := userRepo.GetByUserName(ctx, userName)
	if err != nil {
		log.Fatal().Err(err).Str("user_name", userName).Msg("User not found")
	}

	user.IsAdmin = !demote
	if err := userRepo.Update(ctx, user); err != nil {
		log.Fatal().Err(err).Msg("Failed to update admin flag")
	}

	if demote {
		fmt.Printf("User '%s' (ID %d) is no longer an admin.\n", user.UserName, user.ID)
	} else {
		fmt.Printf("User '%s' (ID %d) is now an admin.\n", user.UserName, user.ID)
	}
}
