package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
)

// SettingRepository manages the single settings row holding the
// provider API token.
type SettingRepository struct {
	pool PgxPool
}

func NewSettingRepository(pool PgxPool) *SettingRepository {
	return &SettingRepository{pool: pool}
}

func (r *SettingRepository) Get(ctx context.Context) (*domain.Setting, error) {
	query := `
		SELECT provider_token, updated_at
		FROM settings
		WHERE id = 1
	`

	var setting domain.Setting
	err := r.pool.QueryRow(ctx, query).Scan(
		&setting.ProviderToken,
		&setting.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTokenNotConfigured
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	return &setting, nil
}

func (r *SettingRepository) UpdateProviderToken(ctx context.Context, token string) error {
	query := `
		INSERT INTO settings (id, provider_token, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE
		SET provider_token = EXCLUDED.provider_token,
		    updated_at = NOW()
	`

	if _, err := r.pool.Exec(ctx, query, token); err != nil {
		return fmt.Errorf("update provider token: %w", err)
	}

	return nil
}

// Token implements provider.TokenSource: the settings row wins, the
// environment fallback applies only when the row is absent or empty.
type SettingTokenSource struct {
	repo     *SettingRepository
	fallback string
}

func NewSettingTokenSource(repo *SettingRepository, fallback string) *SettingTokenSource {
	return &SettingTokenSource{repo: repo, fallback: fallback}
}

func (s *SettingTokenSource) Token(ctx context.Context) (string, error) {
	setting, err := s.repo.Get(ctx)
	if err == nil && setting.ProviderToken != "" {
		return setting.ProviderToken, nil
	}
	if s.fallback != "" {
		return s.fallback, nil
	}
	if err != nil {
		return "", err
	}
	return "", domain.ErrTokenNotConfigured
}
