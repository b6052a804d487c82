package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/repository"
)

// Service authenticates dashboard staff against the staff_users table.
// Consecutive bad passwords lock the account for a fixed window, so a
// stolen username cannot be brute-forced through the login form.
type Service struct {
	users  repository.StaffUserRepositoryInterface
	jwt    *JWTService
	logger *slog.Logger
	now    func() time.Time
}

func NewService(users repository.StaffUserRepositoryInterface, jwt *JWTService, logger *slog.Logger) *Service {
	return &Service{
		users:  users,
		jwt:    jwt,
		logger: logger.With("component", "auth"),
		now:    time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// SessionTTL returns the configured session lifetime.
func (s *Service) SessionTTL() time.Duration {
	return s.jwt.ExpiresIn()
}

// Login verifies credentials and returns a signed session token along
// with the authenticated user. Failures and lockouts surface as the
// domain errors the HTTP layer already knows how to map.
func (s *Service) Login(ctx context.Context, username, password string) (string, *domain.StaffUser, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrStaffUserNotFound) {
			// Same answer as a bad password; don't reveal which usernames exist.
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	now := s.now()
	if user.Locked(now) {
		s.logger.Warn("login attempt on locked account", "username", username)
		return "", nil, domain.ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, s.handleFailedLogin(ctx, user, now)
	}

	if user.FailedAttempts > 0 || user.LockedUntil != nil {
		if err := s.users.ResetFailedLogins(ctx, user.ID); err != nil {
			s.logger.Warn("failed to reset login counter", "username", username, "error", err)
		}
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return "", nil, domain.ErrInternal.WithError(err)
	}

	return token, user, nil
}

func (s *Service) handleFailedLogin(ctx context.Context, user *domain.StaffUser, now time.Time) error {
	attempts := user.FailedAttempts + 1

	var lockedUntil *time.Time
	if attempts >= domain.MaxFailedLogins {
		until := now.Add(domain.LoginLockDuration)
		lockedUntil = &until
	}

	if err := s.users.RecordFailedLogin(ctx, user.ID, attempts, lockedUntil); err != nil {
		s.logger.Error("failed to record login attempt", "username", user.Username, "error", err)
	}

	if lockedUntil != nil {
		s.logger.Warn("staff account locked after repeated failures",
			"username", user.Username,
			slog.Time("locked_until", *lockedUntil),
		)
		return domain.ErrAccountLocked
	}

	return domain.ErrInvalidCredentials
}

// HashPassword produces a bcrypt hash for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
