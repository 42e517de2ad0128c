package calculator

import (
	"math"
	"testing"

	"calcpad/internal/domain"
)

func TestExpression(t *testing.T) {
	tests := []struct {
		name    string
		prev    float64
		op      domain.Operator
		current float64
		result  float64
		want    string
	}{
		{
			name:    "умножение целых",
			prev:    7,
			op:      domain.OpMul,
			current: 6,
			result:  42,
			want:    "7 * 6 = 42",
		},
		{
			name:    "вычитание в минус",
			prev:    3,
			op:      domain.OpSub,
			current: 5,
			result:  -2,
			want:    "3 - 5 = -2",
		},
		{
			name:    "дробный результат",
			prev:    1,
			op:      domain.OpDiv,
			current: 4,
			result:  0.25,
			want:    "1 / 4 = 0.25",
		},
		{
			name:    "погрешность float",
			prev:    0.1,
			op:      domain.OpAdd,
			current: 0.2,
			result:  0.1 + 0.2,
			want:    "0.1 + 0.2 = 0.30000000000000004",
		},
		{
			name:    "переполнение",
			prev:    1e308,
			op:      domain.OpMul,
			current: 10,
			result:  math.Inf(1),
			want:    "1e+308 * 10 = Infinity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expression(tt.prev, tt.op, tt.current, tt.result)
			if got != tt.want {
				t.Errorf("expression(%v, %s, %v, %v) = %q, want %q",
					tt.prev, tt.op, tt.current, tt.result, got, tt.want)
			}
		})
	}
}
