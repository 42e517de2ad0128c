// Package memory — key-value хранилище в памяти процесса. Для тестов и запуска без внешних зависимостей.
package memory

import (
	"context"
	"sync"

	"calcpad/internal/ports"
)

var _ ports.IKeyValueStore = (*Store)(nil)

// Store хранит слоты в map. Значения копируются на входе и выходе.
type Store struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// New создаёт пустое хранилище.
func New() *Store {
	return &Store{slots: make(map[string][]byte)}
}

// Get возвращает копию значения. Если ключа нет — found == false.
func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.slots[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set перезаписывает слот.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = append([]byte(nil), value...)
	return nil
}

// Remove удаляет слот. Отсутствующий ключ — не ошибка.
func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, key)
	return nil
}

// Ping всегда успешен.
func (s *Store) Ping(context.Context) error {
	return nil
}
