package ports

//go:generate mockgen -source=history.go -destination=../mocks/history_mock.go -package=mocks

import (
	"context"

	"calcpad/internal/domain"
)

// IHistoryStore — контракт истории вычислений: не больше domain.HistoryCapacity записей, новые сначала.
// Load не возвращает ошибок: битый или пустой слот — это пустая история.
type IHistoryStore interface {
	Load(ctx context.Context) []domain.CalculationRecord
	Record(ctx context.Context, rec domain.CalculationRecord) error
	Clear(ctx context.Context) error
	Panel(ctx context.Context) domain.HistoryPanel
}
