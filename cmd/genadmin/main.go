package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/auth"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/config"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/database"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/repository"
)

// Bootstraps the first dashboard staff user. Further staff management
// happens through the API.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	username := flag.String("username", "admin", "Username for the new staff user")
	password := flag.String("password", "", "Password for the new staff user (required)")
	role := flag.String("role", string(domain.RoleSuperAdmin), "Role: Viewer, Admin or SuperAdmin")
	flag.Parse()

	if *password == "" {
		return fmt.Errorf("password flag is required")
	}
	r := domain.Role(*role)
	if !r.Valid() {
		return fmt.Errorf("invalid role: %s", *role)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.StaffUser{
		ID:           uuid.New(),
		Username:     *username,
		PasswordHash: hash,
		Role:         r,
	}

	repo := repository.NewStaffUserRepository(pool)
	if err := repo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create staff user: %w", err)
	}

	fmt.Printf("USER=%s\nROLE=%s\nID=%s\n", user.Username, user.Role, user.ID)
	return nil
}
