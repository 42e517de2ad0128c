package redis

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"calcpad/internal/ports"
)

var _ ports.IKeyValueStore = (*SlotStore)(nil)

// SlotStore реализует ports.IKeyValueStore через Redis: один слот — одна строковая запись без TTL.
type SlotStore struct {
	cli *Client
	log *slog.Logger
}

// NewSlotStore возвращает хранилище слотов.
func NewSlotStore(cli *Client, log *slog.Logger) *SlotStore {
	if log == nil {
		log = slog.Default()
	}
	return &SlotStore{cli: cli, log: log}
}

// Get возвращает значение по ключу. Если ключа нет — found == false.
func (s *SlotStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.cli.Get(ctx, s.cli.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) { // ключа нет
			return nil, false, nil
		}
		s.log.Debug("slot get failed", "key", key, "error", err)
		return nil, false, err
	}
	return value, true, nil
}

// Set сохраняет значение по ключу, предыдущее перезаписывается.
func (s *SlotStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.cli.Set(ctx, s.cli.key(key), value, 0).Err(); err != nil {
		s.log.Debug("slot set failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Remove удаляет ключ.
func (s *SlotStore) Remove(ctx context.Context, key string) error {
	if err := s.cli.Del(ctx, s.cli.key(key)).Err(); err != nil {
		s.log.Debug("slot remove failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Ping проверяет соединение (для readiness).
func (s *SlotStore) Ping(ctx context.Context) error {
	return s.cli.Client.Ping(ctx).Err()
}
