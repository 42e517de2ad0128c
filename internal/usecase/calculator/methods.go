package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"calcpad/internal/domain"
)

// AppendDigit дописывает цифру (или точку) к текущему операнду.
// После результата цифра начинает новый операнд; ведущий "0" заменяется.
func (u *UseCase) AppendDigit(d string) error {
	if !domain.IsDigit(d) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidDigit, d)
	}
	s := &u.state
	if s.ShouldResetScreen {
		s.CurrentOperand = d
		s.ShouldResetScreen = false
		return nil
	}
	if d == domain.DecimalPoint && strings.Contains(s.CurrentOperand, domain.DecimalPoint) {
		return nil
	}
	if s.CurrentOperand == domain.InitialOperand && d != domain.DecimalPoint {
		s.CurrentOperand = d
		return nil
	}
	s.CurrentOperand += d
	return nil
}

// AppendDecimalPoint добавляет точку, если в операнде её ещё нет.
func (u *UseCase) AppendDecimalPoint() {
	if strings.Contains(u.state.CurrentOperand, domain.DecimalPoint) {
		return
	}
	u.state.CurrentOperand += domain.DecimalPoint
}

// ChooseOperator фиксирует оператор. Если уже есть левый операнд, сначала считает (3 + 4 + 5 = (3+4)+5).
// Деление на ноль при этом прерывает выбор оператора, состояние не меняется.
func (u *UseCase) ChooseOperator(ctx context.Context, op domain.Operator) error {
	if !op.Valid() {
		return fmt.Errorf("%w: %s", domain.ErrUnknownOperator, op)
	}
	if u.state.CurrentOperand == "" {
		return nil
	}
	if u.state.PreviousOperand != "" {
		if _, err := u.Compute(ctx); err != nil {
			return err
		}
	}
	u.state.Operation = op
	u.state.PreviousOperand = u.state.CurrentOperand
	u.state.CurrentOperand = ""
	u.state.ShouldResetScreen = false
	return nil
}

// Compute считает "<prev> <op> <current>".
// Неполное выражение — тихий no-op (nil, nil). Деление на ноль — domain.ErrDivisionByZero без изменения состояния.
// При успехе запись попадает в историю и уходит в брокер, результат становится текущим операндом.
func (u *UseCase) Compute(ctx context.Context) (*domain.CalculationRecord, error) {
	s := &u.state
	prev, err := domain.ParseOperand(s.PreviousOperand)
	if err != nil {
		u.log.Debug("compute skipped", "error", err)
		return nil, nil
	}
	current, err := domain.ParseOperand(s.CurrentOperand)
	if err != nil {
		u.log.Debug("compute skipped", "error", err)
		return nil, nil
	}

	result, err := s.Operation.Apply(prev, current)
	if err != nil {
		if errors.Is(err, domain.ErrDivisionByZero) {
			calculationsTotal.WithLabelValues(s.Operation.Name(), "division_by_zero").Inc()
			u.log.Info("division by zero rejected", "previous", s.PreviousOperand)
			return nil, domain.ErrDivisionByZero
		}
		u.log.Debug("compute skipped", "error", err)
		return nil, nil
	}

	op := s.Operation
	rec := domain.CalculationRecord{
		Expression: expression(prev, op, current, result),
		Result:     result,
		Timestamp:  u.now().Format(u.timeLayout),
	}
	calculationsTotal.WithLabelValues(op.Name(), "ok").Inc()

	if err := u.history.Record(ctx, rec); err != nil {
		historyWriteFailuresTotal.Inc()
		u.log.Warn("history record failed", "expression", rec.Expression, "error", err)
	} else {
		u.log.Info("calculation recorded", "expression", rec.Expression)
	}
	u.publish(ctx, rec)

	s.CurrentOperand = domain.FormatNumber(result)
	s.Operation = domain.OpNone
	s.PreviousOperand = ""
	s.ShouldResetScreen = true
	return &rec, nil
}

// publish отправляет запись в брокер, если он настроен. Ошибка брокера не влияет на калькулятор.
func (u *UseCase) publish(ctx context.Context, rec domain.CalculationRecord) {
	if u.broker == nil {
		return
	}
	value, err := json.Marshal(rec)
	if err != nil {
		u.log.Warn("broker encode", "expression", rec.Expression, "error", err)
		return
	}
	key := uuid.NewString()
	if err := u.broker.Send(ctx, []byte(key), value); err != nil {
		u.log.Warn("broker send", "key", key, "error", err)
		return
	}
	u.log.Info("calculation published", "key", key, "expression", rec.Expression)
}

// DeleteLastChar стирает последний символ. Сразу после результата стирает всё (как Clear).
func (u *UseCase) DeleteLastChar() {
	if u.state.ShouldResetScreen {
		u.Clear()
		return
	}
	cur := u.state.CurrentOperand
	if cur != "" {
		cur = cur[:len(cur)-1]
	}
	if cur == "" {
		cur = domain.InitialOperand
	}
	u.state.CurrentOperand = cur
}

// Clear возвращает калькулятор в начальное состояние.
func (u *UseCase) Clear() {
	u.state = domain.NewCalculatorState()
}

// Display — строки дисплея для текущего состояния.
func (u *UseCase) Display() domain.Display {
	return u.state.Display()
}

// State возвращает копию состояния.
func (u *UseCase) State() domain.CalculatorState {
	return u.state
}

// HandleCalculationEvent вызывается консьюмером при получении записи из топика (часть ICalculatorUseCase).
// Состояние калькулятора не трогает.
func (u *UseCase) HandleCalculationEvent(ctx context.Context, rec domain.CalculationRecord, at time.Time) error {
	if u.analytics == nil {
		return nil
	}
	if err := u.analytics.WriteCalculation(ctx, rec, at); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	u.log.Info("calculation stored to click", "expression", rec.Expression, "result", rec.Result)
	return nil
}
