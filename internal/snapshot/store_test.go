package snapshot_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/snapshot"
)

func TestStore_EmptyRead(t *testing.T) {
	store := snapshot.NewStore()

	snap, ok := store.Read()
	assert.False(t, ok)
	assert.Nil(t, snap)
}

func TestStore_WriteThenRead(t *testing.T) {
	store := snapshot.NewStore()

	written := &domain.Snapshot{
		Accounts:   []domain.Account{{ID: "a1", Email: "a1@example.com"}},
		CapturedAt: time.Now(),
	}
	store.Write(written)

	snap, ok := store.Read()
	require.True(t, ok)
	assert.Same(t, written, snap)
}

func TestStore_WriteReplaces(t *testing.T) {
	store := snapshot.NewStore()

	first := &domain.Snapshot{CapturedAt: time.Now().Add(-time.Hour)}
	second := &domain.Snapshot{CapturedAt: time.Now()}

	store.Write(first)
	store.Write(second)

	snap, ok := store.Read()
	require.True(t, ok)
	assert.Same(t, second, snap)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := snapshot.NewStore()
	store.Write(&domain.Snapshot{CapturedAt: time.Now()})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.Write(&domain.Snapshot{CapturedAt: time.Now()})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				snap, ok := store.Read()
				if ok {
					_ = snap.CapturedAt
				}
			}
		}()
	}
	wg.Wait()

	_, ok := store.Read()
	assert.True(t, ok)
}
