package click

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcpad/internal/domain"
	"calcpad/internal/pkg/testutil"
)

// setupWriter подключается к тестовому ClickHouse и создаёт таблицу.
func setupWriter(t *testing.T) *CalculationWriter {
	t.Helper()

	ch := testutil.ClickHouseEndpoint(t)
	ctx := context.Background()

	client, err := New(ctx, &Config{
		Host:     ch.Host,
		Port:     ch.Port,
		Database: ch.Database,
		Username: ch.User,
		Password: ch.Password,
	})
	require.NoError(t, err, "не удалось подключиться к ClickHouse")
	t.Cleanup(func() {
		client.Close()
	})

	writer := NewCalculationWriter(client)
	require.NoError(t, writer.EnsureTable(ctx), "не удалось создать таблицу")

	_, err = client.DB().ExecContext(ctx, "TRUNCATE TABLE "+writer.table())
	require.NoError(t, err, "не удалось очистить таблицу")

	return writer
}

func TestCalculationWriter_WriteCalculation(t *testing.T) {
	writer := setupWriter(t)
	ctx := context.Background()

	rec := domain.CalculationRecord{Expression: "7 * 6 = 42", Result: 42, Timestamp: "10/14/2026, 4:42:05 PM"}
	require.NoError(t, writer.WriteCalculation(ctx, rec, time.Now()))
	require.NoError(t, writer.WriteCalculation(ctx, rec, time.Time{}), "нулевое время заменяется текущим")

	var count uint64
	err := writer.db.DB().QueryRowContext(ctx, "SELECT count() FROM "+writer.table()+" WHERE expression = ?", rec.Expression).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)
}
