package snapshot

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
)

// Fetcher pulls the full account list from the provider.
type Fetcher interface {
	FetchAccounts(ctx context.Context) ([]domain.Account, error)
}

// Mirror persists snapshots outside process memory as a best-effort
// backup, read back only when the in-memory slot is empty.
type Mirror interface {
	Save(ctx context.Context, snap *domain.Snapshot) error
	Load(ctx context.Context) (*domain.Snapshot, error)
}

// Refresher decides, per request, whether the stored snapshot is fresh
// enough to reuse or must be re-fetched from the provider. Fetches are
// synchronous: a caller asking for fresh data waits for it, the same
// policy for reads and post-mutation refreshes.
type Refresher struct {
	store   *Store
	fetcher Fetcher
	mirror  Mirror
	ttl     time.Duration
	logger  *slog.Logger
	now     func() time.Time
}

// NewRefresher creates a refresher. mirror may be nil when no durable
// backup is configured.
func NewRefresher(store *Store, fetcher Fetcher, mirror Mirror, ttl time.Duration, logger *slog.Logger) *Refresher {
	return &Refresher{
		store:   store,
		fetcher: fetcher,
		mirror:  mirror,
		ttl:     ttl,
		logger:  logger.With("component", "snapshot"),
		now:     time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (r *Refresher) WithClock(now func() time.Time) *Refresher {
	r.now = now
	return r
}

// EnsureFresh returns a snapshot no older than the TTL, fetching from
// the provider when needed. force bypasses the TTL check. On fetch
// failure the previous snapshot is kept and returned alongside the
// error; the store is never overwritten with a failed result.
func (r *Refresher) EnsureFresh(ctx context.Context, force bool) (*domain.Snapshot, error) {
	snap, ok := r.store.Read()

	if !ok && r.mirror != nil {
		if restored, err := r.mirror.Load(ctx); err != nil {
			r.logger.Warn("snapshot mirror read failed", "error", err)
		} else if restored != nil {
			r.logger.Info("restored snapshot from mirror",
				slog.Int("accounts", len(restored.Accounts)),
				slog.Time("captured_at", restored.CapturedAt),
			)
			r.store.Write(restored)
			snap, ok = restored, true
		}
	}

	if ok && !force && snap.Age(r.now()) < r.ttl {
		return snap, nil
	}

	accounts, err := r.fetcher.FetchAccounts(ctx)
	if err != nil {
		err = asUpstreamError(err)
		if ok {
			// Serve last-known-good data; the caller decides how to
			// surface the fetch failure.
			r.logger.Warn("provider fetch failed, serving stale snapshot",
				"error", err,
				slog.Duration("age", snap.Age(r.now())),
			)
			return snap, err
		}
		return nil, domain.ErrSnapshotUnavailable.WithError(err)
	}

	fresh := &domain.Snapshot{Accounts: accounts, CapturedAt: r.now()}
	r.store.Write(fresh)

	if r.mirror != nil {
		if err := r.mirror.Save(ctx, fresh); err != nil {
			r.logger.Warn("snapshot mirror write failed", "error", err)
		}
	}

	r.logger.Debug("snapshot refreshed",
		slog.Int("accounts", len(fresh.Accounts)),
		slog.Bool("forced", force),
	)

	return fresh, nil
}

func asUpstreamError(err error) error {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return domain.ErrUpstreamFetch.WithError(err)
}
