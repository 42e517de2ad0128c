package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcpad/internal/infrastructure/sqlite"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenStorage_Memory(t *testing.T) {
	store, closer, err := openStorage(context.Background(), Config{Storage: StorageConfig{Driver: DriverMemory}}, testLogger())
	require.NoError(t, err)
	defer closer()

	require.NoError(t, store.Set(context.Background(), "k", []byte("v")))
	v, ok, err := store.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), v)
}

func TestOpenStorage_SQLite(t *testing.T) {
	cfg := Config{
		Storage: StorageConfig{Driver: DriverSQLite},
		SQLite:  sqlite.Config{File: filepath.Join(t.TempDir(), "calc.db")},
	}
	store, closer, err := openStorage(context.Background(), cfg, testLogger())
	require.NoError(t, err)
	defer closer()

	assert.NoError(t, store.Ping(context.Background()))
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	_, _, err := openStorage(context.Background(), Config{Storage: StorageConfig{Driver: "etcd"}}, testLogger())
	assert.ErrorContains(t, err, `unknown storage driver "etcd"`)
}
