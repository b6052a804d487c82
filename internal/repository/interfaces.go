package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
)

// PgxPool is the subset of pgxpool.Pool the repositories use,
// compatible with pgxmock for tests.
type PgxPool interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
}

// StaffUserRepositoryInterface defines operations for staff user data access
type StaffUserRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StaffUser, error)
	GetByUsername(ctx context.Context, username string) (*domain.StaffUser, error)
	List(ctx context.Context) ([]domain.StaffUser, error)
	Create(ctx context.Context, user *domain.StaffUser) error
	Update(ctx context.Context, user *domain.StaffUser) error
	Delete(ctx context.Context, id uuid.UUID) error
	RecordFailedLogin(ctx context.Context, id uuid.UUID, attempts int, lockedUntil *time.Time) error
	ResetFailedLogins(ctx context.Context, id uuid.UUID) error
}

// SettingRepositoryInterface defines operations for the settings row
type SettingRepositoryInterface interface {
	Get(ctx context.Context) (*domain.Setting, error)
	UpdateProviderToken(ctx context.Context, token string) error
}
