package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"calcpad/internal/ports"
)

var _ ports.IKeyValueStore = (*SlotStore)(nil)

// SlotStore реализует ports.IKeyValueStore поверх таблицы kv_slots.
type SlotStore struct {
	db  *DB
	log *slog.Logger
}

// NewSlotStore возвращает хранилище слотов.
func NewSlotStore(db *DB, log *slog.Logger) *SlotStore {
	if log == nil {
		log = slog.Default()
	}
	return &SlotStore{db: db, log: log}
}

// Get возвращает значение слота. Если строки нет — found == false.
func (s *SlotStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_slots WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		s.log.Debug("slot get failed", "key", key, "error", err)
		return nil, false, err
	}
	return value, true, nil
}

// Set вставляет или перезаписывает слот.
func (s *SlotStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_slots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		s.log.Debug("slot set failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Remove удаляет слот.
func (s *SlotStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_slots WHERE key = ?`, key); err != nil {
		s.log.Debug("slot remove failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Ping проверяет соединение (для readiness).
func (s *SlotStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
