package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
)

type StaffUserRepository struct {
	pool PgxPool
}

func NewStaffUserRepository(pool PgxPool) *StaffUserRepository {
	return &StaffUserRepository{pool: pool}
}

const staffUserColumns = `id, username, password_hash, role, failed_attempts, locked_until, created_at, updated_at`

func (r *StaffUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.StaffUser, error) {
	query := `
		SELECT ` + staffUserColumns + `
		FROM staff_users
		WHERE id = $1
	`

	user, err := scanStaffUser(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrStaffUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get staff user by id: %w", err)
	}

	return user, nil
}

func (r *StaffUserRepository) GetByUsername(ctx context.Context, username string) (*domain.StaffUser, error) {
	query := `
		SELECT ` + staffUserColumns + `
		FROM staff_users
		WHERE username = $1
	`

	user, err := scanStaffUser(r.pool.QueryRow(ctx, query, username))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrStaffUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get staff user by username: %w", err)
	}

	return user, nil
}

func (r *StaffUserRepository) List(ctx context.Context) ([]domain.StaffUser, error) {
	query := `
		SELECT ` + staffUserColumns + `
		FROM staff_users
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list staff users: %w", err)
	}
	defer rows.Close()

	var users []domain.StaffUser
	for rows.Next() {
		user, err := scanStaffUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan staff user: %w", err)
		}
		users = append(users, *user)
	}

	return users, rows.Err()
}

func (r *StaffUserRepository) Create(ctx context.Context, user *domain.StaffUser) error {
	query := `
		INSERT INTO staff_users (id, username, password_hash, role, failed_attempts, locked_until, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	err := r.pool.QueryRow(ctx, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.Role,
		user.FailedAttempts,
		user.LockedUntil,
	).Scan(&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrStaffUserExists
		}
		return fmt.Errorf("create staff user: %w", err)
	}

	return nil
}

func (r *StaffUserRepository) Update(ctx context.Context, user *domain.StaffUser) error {
	query := `
		UPDATE staff_users
		SET username = $2, password_hash = $3, role = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.Role,
	).Scan(&user.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrStaffUserNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrStaffUserExists
		}
		return fmt.Errorf("update staff user: %w", err)
	}

	return nil
}

func (r *StaffUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM staff_users
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete staff user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrStaffUserNotFound
	}

	return nil
}

// RecordFailedLogin bumps the failed-attempt counter and, once the
// threshold is hit, sets the lockout deadline.
func (r *StaffUserRepository) RecordFailedLogin(ctx context.Context, id uuid.UUID, attempts int, lockedUntil *time.Time) error {
	query := `
		UPDATE staff_users
		SET failed_attempts = $2, locked_until = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id, attempts, lockedUntil)
	if err != nil {
		return fmt.Errorf("record failed login: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrStaffUserNotFound
	}

	return nil
}

// ResetFailedLogins clears the counter and lockout after a successful login.
func (r *StaffUserRepository) ResetFailedLogins(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE staff_users
		SET failed_attempts = 0, locked_until = NULL, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("reset failed logins: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrStaffUserNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStaffUser(row rowScanner) (*domain.StaffUser, error) {
	var user domain.StaffUser
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.FailedAttempts,
		&user.LockedUntil,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// isUniqueViolation checks if the error is a unique constraint violation
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "23505") ||
		strings.Contains(errMsg, "unique") ||
		strings.Contains(errMsg, "duplicate key")
}
