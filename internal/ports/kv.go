package ports

//go:generate mockgen -source=kv.go -destination=../mocks/kv_mock.go -package=mocks

import "context"

// IKeyValueStore — контракт внешнего key-value хранилища (аналог localStorage): один ключ — один слот.
// Реализации: memory, sqlite, redis, postgres, mongo.
type IKeyValueStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
