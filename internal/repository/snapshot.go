package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
)

// SnapshotRepository mirrors the in-memory account snapshot into a
// single Postgres row. The mirror is best-effort: it is written after
// every successful provider fetch and read back only when the
// in-memory slot is empty after a restart.
type SnapshotRepository struct {
	pool PgxPool
}

func NewSnapshotRepository(pool PgxPool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

// Save upserts the snapshot as JSON.
func (r *SnapshotRepository) Save(ctx context.Context, snap *domain.Snapshot) error {
	payload, err := json.Marshal(snap.Accounts)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	query := `
		INSERT INTO snapshot_mirror (id, accounts, captured_at)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE
		SET accounts = EXCLUDED.accounts,
		    captured_at = EXCLUDED.captured_at
	`

	if _, err := r.pool.Exec(ctx, query, payload, snap.CapturedAt); err != nil {
		return fmt.Errorf("save snapshot mirror: %w", err)
	}

	return nil
}

// Load returns the mirrored snapshot, or (nil, nil) when none has ever
// been written.
func (r *SnapshotRepository) Load(ctx context.Context) (*domain.Snapshot, error) {
	query := `
		SELECT accounts, captured_at
		FROM snapshot_mirror
		WHERE id = 1
	`

	var payload []byte
	var snap domain.Snapshot

	err := r.pool.QueryRow(ctx, query).Scan(&payload, &snap.CapturedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot mirror: %w", err)
	}

	if err := json.Unmarshal(payload, &snap.Accounts); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot mirror: %w", err)
	}

	return &snap, nil
}
