package mock

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/provider"
)

// Provider implements provider.AccountProvider against an in-memory
// account list, for tests and local development without console API
// access. Mutations mutate the list so a following FetchAccounts
// observes them, mimicking the real provider.
type Provider struct {
	mu       sync.Mutex
	accounts []domain.Account

	// FetchErr, when set, is returned by every FetchAccounts call.
	FetchErr error
	// MutateErr, when set, is returned by every mutation call.
	MutateErr error

	fetchCalls int
}

// New creates a mock provider seeded with the given accounts.
func New(accounts []domain.Account) *Provider {
	cp := make([]domain.Account, len(accounts))
	copy(cp, accounts)
	return &Provider{accounts: cp}
}

// NewSeeded creates a mock provider with n generated accounts, creation
// times spaced one day apart ending at now.
func NewSeeded(n int, now time.Time) *Provider {
	accounts := make([]domain.Account, 0, n)
	for i := 0; i < n; i++ {
		created := now.AddDate(0, 0, -(n - 1 - i))
		accounts = append(accounts, domain.Account{
			ID:               fmt.Sprintf("acct-%03d", i+1),
			Name:             fmt.Sprintf("Account %03d", i+1),
			Email:            fmt.Sprintf("account%03d@example.com", i+1),
			Role:             "owner",
			CreatedAt:        strconv.FormatInt(created.Unix(), 10),
			MaxApps:          10,
			MaxTokens:        200000,
			MaxFileDatasets:  10,
			SubscriptionPlan: "free",
		})
	}
	return New(accounts)
}

// FetchAccounts returns a copy of the current account list.
func (p *Provider) FetchAccounts(_ context.Context) ([]domain.Account, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fetchCalls++
	if p.FetchErr != nil {
		return nil, p.FetchErr
	}
	cp := make([]domain.Account, len(p.accounts))
	copy(cp, p.accounts)
	return cp, nil
}

// FetchCalls reports how many times FetchAccounts was invoked.
func (p *Provider) FetchCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fetchCalls
}

// ExtendSubscription updates the account's end date.
func (p *Provider) ExtendSubscription(_ context.Context, req provider.MutationRequest) error {
	return p.apply(req.AccountID, func(a *domain.Account) {
		a.EndDate = req.EndDate
	})
}

// SetMaxApps updates the account's application quota.
func (p *Provider) SetMaxApps(_ context.Context, req provider.MutationRequest) error {
	return p.apply(req.AccountID, func(a *domain.Account) {
		a.MaxApps = req.MaxApps
	})
}

// SetMaxTokens updates the account's token quota.
func (p *Provider) SetMaxTokens(_ context.Context, req provider.MutationRequest) error {
	return p.apply(req.AccountID, func(a *domain.Account) {
		a.MaxTokens = req.MaxTokens
	})
}

// SetMaxFileDatasets updates the account's file dataset quota.
func (p *Provider) SetMaxFileDatasets(_ context.Context, req provider.MutationRequest) error {
	return p.apply(req.AccountID, func(a *domain.Account) {
		a.MaxFileDatasets = req.MaxFileDatasets
	})
}

// RemoveAccount deletes the account from the list.
func (p *Provider) RemoveAccount(_ context.Context, accountID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.MutateErr != nil {
		return p.MutateErr
	}
	for i := range p.accounts {
		if p.accounts[i].ID == accountID {
			p.accounts = append(p.accounts[:i], p.accounts[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (p *Provider) apply(accountID string, fn func(*domain.Account)) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.MutateErr != nil {
		return p.MutateErr
	}
	for i := range p.accounts {
		if p.accounts[i].ID == accountID {
			fn(&p.accounts[i])
			return nil
		}
	}
	return domain.ErrNotFound
}
