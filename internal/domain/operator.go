package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownOperator возвращается, когда оператор не входит в набор калькулятора.
var ErrUnknownOperator = errors.New("unknown operator")

// ErrDivisionByZero — деление на ноль. Единственная ошибка, которую видит пользователь.
var ErrDivisionByZero = errors.New("cannot divide by zero")

// Operator — арифметический оператор калькулятора. Нулевое значение OpNone означает «оператор не выбран».
type Operator int

// Набор операторов. Порядок совпадает с раскладкой кнопок.
const (
	OpNone Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

// Operators возвращает все выбираемые операторы.
func Operators() []Operator {
	return []Operator{OpAdd, OpSub, OpMul, OpDiv}
}

// Glyph возвращает символ оператора на дисплее и в истории.
func (o Operator) Glyph() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpNone:
		return ""
	}
	return ""
}

// Name возвращает имя оператора (для API и меток метрик).
func (o Operator) Name() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSub:
		return "subtract"
	case OpMul:
		return "multiply"
	case OpDiv:
		return "divide"
	case OpNone:
		return "none"
	}
	return "none"
}

// String реализует fmt.Stringer.
func (o Operator) String() string {
	return o.Name()
}

// Valid сообщает, выбран ли реальный оператор.
func (o Operator) Valid() bool {
	switch o {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	case OpNone:
		return false
	}
	return false
}

// Apply применяет оператор к двум числам. Деление на ноль (в том числе на -0) — ErrDivisionByZero.
func (o Operator) Apply(a, b float64) (float64, error) {
	switch o {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	case OpNone:
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownOperator, int(o))
}

// ParseOperator принимает символ ("+") или имя ("add").
func ParseOperator(s string) (Operator, error) {
	for _, op := range Operators() {
		if s == op.Glyph() || s == op.Name() {
			return op, nil
		}
	}
	return OpNone, fmt.Errorf("%w: %q", ErrUnknownOperator, s)
}
