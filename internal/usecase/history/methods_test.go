package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"calcpad/internal/domain"
	"calcpad/internal/infrastructure/memory"
	"calcpad/internal/mocks"
)

// newTestLogger создаёт логгер для тестов (выводит только ошибки, чтобы не засорять вывод).
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func record(i int) domain.CalculationRecord {
	return domain.CalculationRecord{
		Expression: fmt.Sprintf("%d + 0 = %d", i, i),
		Result:     float64(i),
		Timestamp:  fmt.Sprintf("10/14/2026, 4:%02d:00 PM", i),
	}
}

func TestLoad_Empty(t *testing.T) {
	uc := New(memory.New(), newTestLogger())

	list := uc.Load(context.Background())

	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestRecord_RoundTrip(t *testing.T) {
	uc := New(memory.New(), newTestLogger())
	ctx := context.Background()

	rec := domain.CalculationRecord{Expression: "7 * 6 = 42", Result: 42, Timestamp: "10/14/2026, 4:42:00 PM"}
	require.NoError(t, uc.Record(ctx, rec))

	list := uc.Load(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, rec, list[0])
}

// 11 записей подряд: остаются 10 самых новых, одиннадцатая первой.
func TestRecord_Capacity(t *testing.T) {
	uc := New(memory.New(), newTestLogger())
	ctx := context.Background()

	for i := 1; i <= 11; i++ {
		require.NoError(t, uc.Record(ctx, record(i)))
	}

	list := uc.Load(ctx)
	require.Len(t, list, domain.HistoryCapacity)
	assert.Equal(t, record(11), list[0])
	assert.Equal(t, record(2), list[9], "самая старая (1) вытеснена")
	for i, rec := range list {
		assert.Equal(t, float64(11-i), rec.Result)
	}
}

func TestClear(t *testing.T) {
	kv := memory.New()
	uc := New(kv, newTestLogger())
	ctx := context.Background()

	require.NoError(t, uc.Record(ctx, record(1)))
	require.NoError(t, uc.Clear(ctx))

	assert.Empty(t, uc.Load(ctx))
	_, found, err := kv.Get(ctx, SlotKey)
	require.NoError(t, err)
	assert.False(t, found, "слот удаляется целиком")

	// повторная очистка — не ошибка
	assert.NoError(t, uc.Clear(ctx))
}

func TestLoad_CorruptSnapshot(t *testing.T) {
	kv := memory.New()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, SlotKey, []byte("{not json")))

	uc := New(kv, newTestLogger())

	assert.Empty(t, uc.Load(ctx))

	// запись поверх битого снимка начинает историю заново
	require.NoError(t, uc.Record(ctx, record(1)))
	assert.Equal(t, []domain.CalculationRecord{record(1)}, uc.Load(ctx))
}

func TestLoad_NullSnapshot(t *testing.T) {
	kv := memory.New()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, SlotKey, []byte("null")))

	uc := New(kv, newTestLogger())

	list := uc.Load(ctx)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestLoad_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := mocks.NewMockIKeyValueStore(ctrl)
	kv.EXPECT().Get(gomock.Any(), SlotKey).Return(nil, false, errors.New("connection refused"))

	uc := New(kv, newTestLogger())

	assert.Empty(t, uc.Load(context.Background()))
}

func TestRecord_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := mocks.NewMockIKeyValueStore(ctrl)
	saveErr := errors.New("read-only")
	gomock.InOrder(
		kv.EXPECT().Get(gomock.Any(), SlotKey).Return(nil, false, nil),
		kv.EXPECT().Set(gomock.Any(), SlotKey, gomock.Any()).Return(saveErr),
	)

	uc := New(kv, newTestLogger())

	err := uc.Record(context.Background(), record(1))
	assert.ErrorIs(t, err, saveErr)
}

func TestRecord_WritesSerializedArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := mocks.NewMockIKeyValueStore(ctrl)
	rec := domain.CalculationRecord{Expression: "1 + 1 = 2", Result: 2, Timestamp: "ts"}
	gomock.InOrder(
		kv.EXPECT().Get(gomock.Any(), SlotKey).Return(nil, false, nil),
		kv.EXPECT().Set(gomock.Any(), SlotKey, []byte(`[{"expression":"1 + 1 = 2","result":2,"timestamp":"ts"}]`)).Return(nil),
	)

	uc := New(kv, newTestLogger())

	require.NoError(t, uc.Record(context.Background(), rec))
}

func TestPanel(t *testing.T) {
	uc := New(memory.New(), newTestLogger())
	ctx := context.Background()

	panel := uc.Panel(ctx)
	assert.True(t, panel.Empty)
	assert.Equal(t, domain.HistoryPlaceholder, panel.Placeholder)

	require.NoError(t, uc.Record(ctx, record(1)))
	require.NoError(t, uc.Record(ctx, record(2)))

	panel = uc.Panel(ctx)
	assert.False(t, panel.Empty)
	require.Len(t, panel.Items, 2)
	assert.Equal(t, record(2).Expression, panel.Items[0].Expression)
	assert.Equal(t, record(2).Timestamp, panel.Items[0].Timestamp)
}
