package provider

import (
	"context"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
)

// AccountProvider is the boundary to the downstream SaaS console API.
// The dashboard mirrors account data through FetchAccounts and proxies
// a small set of management actions; everything else about the provider
// is out of scope.
type AccountProvider interface {
	// FetchAccounts returns the provider's complete current account list.
	FetchAccounts(ctx context.Context) ([]domain.Account, error)

	// ExtendSubscription moves an account's subscription end date.
	ExtendSubscription(ctx context.Context, req MutationRequest) error

	// SetMaxApps updates the account's application quota.
	SetMaxApps(ctx context.Context, req MutationRequest) error

	// SetMaxTokens updates the account's token quota.
	SetMaxTokens(ctx context.Context, req MutationRequest) error

	// SetMaxFileDatasets updates the account's file dataset quota.
	SetMaxFileDatasets(ctx context.Context, req MutationRequest) error

	// RemoveAccount deletes the account on the provider side.
	RemoveAccount(ctx context.Context, accountID string) error
}

// MutationRequest carries an account mutation to the provider. The
// console API takes the full bag on every mutation endpoint and reads
// the fields relevant to it.
type MutationRequest struct {
	AccountID       string `json:"user_id"`
	EndDate         string `json:"end_date,omitempty"`
	MaxApps         int64  `json:"max_apps,omitempty"`
	MaxTokens       int64  `json:"max_tokens,omitempty"`
	MaxFileDatasets int64  `json:"max_file_datasets,omitempty"`
}

// TokenSource supplies the bearer token for console API calls. The
// runtime implementation reads the settings table so a SuperAdmin can
// rotate the token without a restart.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource returning a fixed token, used in tests
// and as the environment-variable fallback.
type StaticToken string

func (t StaticToken) Token(_ context.Context) (string, error) {
	if t == "" {
		return "", domain.ErrTokenNotConfigured
	}
	return string(t), nil
}
