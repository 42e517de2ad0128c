// Package sqlite — локальное key-value хранилище на SQLite (драйвер modernc.org/sqlite, без cgo).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Config — настройки файла SQLite. Переменные: CALCULATOR_SQLITE_FILE.
type Config struct {
	File string `envconfig:"FILE" default:"data/calcpad.db"`
}

const createSlotsTable = `
CREATE TABLE IF NOT EXISTS kv_slots (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// DB обёртка над соединением с файлом базы.
type DB struct {
	*sql.DB
	file string
}

// New открывает (или создаёт) файл базы, проверяет пингом и создаёт таблицу слотов.
func New(ctx context.Context, cfg *Config) (*DB, error) {
	if cfg == nil || cfg.File == "" {
		cfg = &Config{File: "data/calcpad.db"}
	}
	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite mkdir: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", cfg.File+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	// Один писатель: калькулятор пишет слот по одному событию за раз.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}
	if _, err := conn.ExecContext(ctx, createSlotsTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite migrate: %w", err)
	}
	return &DB{DB: conn, file: cfg.File}, nil
}

// File возвращает путь к файлу базы.
func (db *DB) File() string {
	return db.file
}
