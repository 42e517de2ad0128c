package history

import (
	"log/slog"

	"calcpad/internal/ports"
)

// SlotKey — ключ слота, под которым в key-value хранилище лежит снимок истории.
const SlotKey = "calculatorHistory"

var _ ports.IHistoryStore = (*UseCase)(nil)

// UseCase — история вычислений поверх одного слота key-value хранилища.
type UseCase struct {
	kv  ports.IKeyValueStore
	log *slog.Logger
}

// New создаёт историю над переданным хранилищем.
func New(kv ports.IKeyValueStore, log *slog.Logger) *UseCase {
	if log == nil {
		log = slog.Default()
	}
	return &UseCase{kv: kv, log: log}
}
