package pg

import (
	"context"
	"fmt"
)

const createSlotsTable = `
CREATE TABLE IF NOT EXISTS kv_slots (
	key        TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate создаёт таблицу kv_slots, если её ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	if _, err := db.ExecContext(ctx, createSlotsTable); err != nil {
		return fmt.Errorf("pg migrate: %w", err)
	}
	return nil
}
