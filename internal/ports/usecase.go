package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"
	"time"

	"calcpad/internal/domain"
)

// ICalculatorUseCase — контракт машины ввода калькулятора и обработки событий вычислений из брокера.
// Методы ввода не потокобезопасны: вызывающая сторона подаёт события по одному.
type ICalculatorUseCase interface {
	AppendDigit(d string) error
	AppendDecimalPoint()
	ChooseOperator(ctx context.Context, op domain.Operator) error
	Compute(ctx context.Context) (*domain.CalculationRecord, error)
	DeleteLastChar()
	Clear()
	Display() domain.Display
	State() domain.CalculatorState
	HandleCalculationEvent(ctx context.Context, rec domain.CalculationRecord, at time.Time) error
}
