package domain

import "errors"

// ErrInvalidDigit — на вход AppendDigit пришёл не символ 0–9 и не точка.
var ErrInvalidDigit = errors.New("invalid digit")

// InitialOperand — значение дисплея после старта и после сброса.
const InitialOperand = "0"

// DecimalPoint — десятичный разделитель.
const DecimalPoint = "."

// CalculatorState — состояние ввода калькулятора.
// CurrentOperand содержит не больше одной точки.
type CalculatorState struct {
	CurrentOperand    string
	PreviousOperand   string
	Operation         Operator
	ShouldResetScreen bool
}

// NewCalculatorState возвращает начальное состояние {"0", "", none, false}.
func NewCalculatorState() CalculatorState {
	return CalculatorState{CurrentOperand: InitialOperand}
}

// Display — две строки дисплея: основная (текущий операнд) и вспомогательная ("12 +").
type Display struct {
	Primary   string
	Secondary string
}

// Display проецирует состояние на дисплей, не меняя его.
func (s CalculatorState) Display() Display {
	d := Display{Primary: s.CurrentOperand}
	if s.PreviousOperand != "" && s.Operation.Valid() {
		d.Secondary = s.PreviousOperand + " " + s.Operation.Glyph()
	}
	return d
}

// IsDigit сообщает, можно ли передать d в AppendDigit.
func IsDigit(d string) bool {
	if len(d) != 1 {
		return false
	}
	return d == DecimalPoint || (d[0] >= '0' && d[0] <= '9')
}
