package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedOperand — строку операнда нельзя прочитать как число (например "" или ".").
var ErrMalformedOperand = errors.New("malformed operand")

// ParseOperand читает операнд с дисплея. "3." и ".5" допустимы; значения вне диапазона float64 становятся ±Inf.
// Точка после экспоненты или Infinity ("1e-7.", "Infinity.") отбрасывается. NaN операндом не считается.
func ParseOperand(s string) (float64, error) {
	v, err := parseDisplayNumber(s)
	if err != nil && strings.HasSuffix(s, DecimalPoint) {
		v, err = parseDisplayNumber(strings.TrimSuffix(s, DecimalPoint))
	}
	if err != nil || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedOperand, s)
	}
	return v, nil
}

func parseDisplayNumber(s string) (float64, error) {
	if s == "" {
		return 0, ErrMalformedOperand
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return v, nil
}

// FormatNumber печатает число так же, как браузер печатает Number:
// кратчайшая запись, экспонента для |v| < 1e-6 и |v| >= 1e21, "-0" как "0".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		// strconv даёт "1.5e-07", нужно "1.5e-7".
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
