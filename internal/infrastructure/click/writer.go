package click

import (
	"context"
	"fmt"
	"time"

	"calcpad/internal/domain"
	"calcpad/internal/ports"
)

const calculationsTable = "calculations_analytics"

var _ ports.ICalculationAnalytics = (*CalculationWriter)(nil)

// CalculationWriter записывает вычисления в ClickHouse в формате, удобном для аналитики (по времени, по результату).
type CalculationWriter struct {
	db *Client
}

// NewCalculationWriter создаёт писатель вычислений для аналитики.
func NewCalculationWriter(db *Client) *CalculationWriter {
	return &CalculationWriter{db: db}
}

func (w *CalculationWriter) table() string {
	return w.db.database + "." + calculationsTable
}

// EnsureTable создаёт таблицу вычислений, если её ещё нет. Вызови один раз при старте приложения.
func (w *CalculationWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			expression String,
			result Float64,
			display_timestamp String,
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at)
		PARTITION BY toYYYYMM(created_at)`,
		w.table(),
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteCalculation реализует ports.ICalculationAnalytics: пишет одно вычисление в ClickHouse.
// at — время события в брокере; нулевое значение заменяется текущим.
func (w *CalculationWriter) WriteCalculation(ctx context.Context, rec domain.CalculationRecord, at time.Time) error {
	if at.IsZero() {
		at = time.Now()
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (expression, result, display_timestamp, created_at) VALUES (?, ?, ?, ?)",
		w.table(),
	)
	_, err := w.db.DB().ExecContext(ctx, query, rec.Expression, rec.Result, rec.Timestamp, at)
	if err != nil {
		return fmt.Errorf("insert calculation: %w", err)
	}
	return nil
}
