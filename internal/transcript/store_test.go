package transcript

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgdnvk/parley/internal/agent/model"
)

func openTestStore(t *testing.T, maxTurns int) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "transcript.db"), maxTurns)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_AppendAndRecent(t *testing.T) {
	store := openTestStore(t, 10)
	ctx := context.Background()
	session := uuid.NewString()

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, store.Append(ctx, model.TurnRecord{
		SessionID: session,
		Turn:      1,
		Utterance: " how are you",
		Intents:   []model.Intent{model.IntentHow},
		Output:    "im good. Can I help you with something?\n",
		CreatedAt: created,
	}))
	require.NoError(t, store.Append(ctx, model.TurnRecord{
		SessionID: session,
		Turn:      2,
		Utterance: " search example.com",
		Intents:   []model.Intent{model.IntentWebsite},
	}))

	records, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 1, records[0].Turn)
	assert.Equal(t, session, records[0].SessionID)
	assert.Equal(t, []model.Intent{model.IntentHow}, records[0].Intents)
	assert.True(t, created.Equal(records[0].CreatedAt))
	assert.Equal(t, 2, records[1].Turn)
	assert.False(t, records[1].CreatedAt.IsZero())
}

func TestStore_RecentLimit(t *testing.T) {
	store := openTestStore(t, 10)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		require.NoError(t, store.Append(ctx, model.TurnRecord{SessionID: "s", Turn: i}))
	}

	records, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 4, records[0].Turn)
	assert.Equal(t, 5, records[1].Turn)
}

func TestStore_Prunes(t *testing.T) {
	store := openTestStore(t, 3)
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		require.NoError(t, store.Append(ctx, model.TurnRecord{SessionID: "s", Turn: i}))
	}

	records, err := store.Recent(ctx, 100)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 5, records[0].Turn)
	assert.Equal(t, 7, records[2].Turn)
}

func TestStore_RejectsMissingSession(t *testing.T) {
	store := openTestStore(t, 3)
	err := store.Append(context.Background(), model.TurnRecord{Turn: 1})
	require.ErrorIs(t, err, ErrInvalidRecord)
}

func TestStore_Clear(t *testing.T) {
	store := openTestStore(t, 3)
	ctx := context.Background()
	require.NoError(t, store.Append(ctx, model.TurnRecord{SessionID: "s", Turn: 1}))
	require.NoError(t, store.Append(ctx, model.TurnRecord{SessionID: "s", Turn: 2}))

	n, err := store.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	records, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_ReopenKeepsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.db")
	ctx := context.Background()

	store, err := Open(path, 0)
	require.NoError(t, err)
	require.NoError(t, store.Append(ctx, model.TurnRecord{SessionID: "s", Turn: 1}))
	require.NoError(t, store.Close())

	store, err = Open(path, 0)
	require.NoError(t, err)
	defer store.Close()

	records, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
