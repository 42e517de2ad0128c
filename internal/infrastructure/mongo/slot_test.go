package mongo

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcpad/internal/domain"
	"calcpad/internal/pkg/testutil"
	"calcpad/internal/usecase/history"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// setupSlotStore подключается к тестовой MongoDB и очищает коллекцию.
func setupSlotStore(t *testing.T) *SlotStore {
	t.Helper()

	uri := testutil.MongoURI(t)
	ctx := context.Background()

	client, err := New(ctx, &Config{
		URI:        uri,
		Database:   "testdb",
		Collection: "slots",
	})
	require.NoError(t, err, "не удалось подключиться к MongoDB")

	if err := client.Coll().Drop(ctx); err != nil {
		t.Logf("drop collection: %v (игнорируем)", err)
	}

	t.Cleanup(func() {
		client.Close()
	})

	return NewSlotStore(client, newTestLogger())
}

func TestSlotStore_SetGetRemove(t *testing.T) {
	store := setupSlotStore(t)
	ctx := context.Background()

	_, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "k", []byte("v1")))
	require.NoError(t, store.Set(ctx, "k", []byte("v2")))

	count, err := store.client.Coll().CountDocuments(ctx, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "upsert заменяет документ")

	value, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v2"), value)

	require.NoError(t, store.Remove(ctx, "k"))
	_, found, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSlotStore_HistoryRoundTrip(t *testing.T) {
	store := setupSlotStore(t)
	ctx := context.Background()
	h := history.New(store, newTestLogger())

	rec := domain.CalculationRecord{Expression: "3 + 4 = 7", Result: 7, Timestamp: "10/14/2026, 4:42:05 PM"}
	require.NoError(t, h.Record(ctx, rec))

	list := h.Load(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, rec, list[0])

	require.NoError(t, h.Clear(ctx))
	assert.Empty(t, h.Load(ctx))
}
