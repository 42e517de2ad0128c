package domain

import (
	"errors"
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "целое", in: 42, want: "42"},
		{name: "дробное", in: 3.14, want: "3.14"},
		{name: "погрешность float", in: 0.1 + 0.2, want: "0.30000000000000004"},
		{name: "отрицательное", in: -2.5, want: "-2.5"},
		{name: "минус ноль", in: math.Copysign(0, -1), want: "0"},
		{name: "маленькое без экспоненты", in: 0.000001, want: "0.000001"},
		{name: "очень маленькое", in: 0.00000015, want: "1.5e-7"},
		{name: "большое без экспоненты", in: 123456789012345680000, want: "123456789012345680000"},
		{name: "очень большое", in: 1e21, want: "1e+21"},
		{name: "бесконечность", in: math.Inf(1), want: "Infinity"},
		{name: "минус бесконечность", in: math.Inf(-1), want: "-Infinity"},
		{name: "не число", in: math.NaN(), want: "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNumber(tt.in); got != tt.want {
				t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseOperand(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{name: "целое", in: "12", want: 12},
		{name: "точка в конце", in: "3.", want: 3},
		{name: "точка в начале", in: ".5", want: 0.5},
		{name: "результат с минусом", in: "-7", want: -7},
		{name: "экспонента", in: "1e-7", want: 1e-7},
		{name: "точка после экспоненты", in: "1e-7.", want: 1e-7},
		{name: "бесконечность", in: "Infinity", want: math.Inf(1)},
		{name: "точка после бесконечности", in: "Infinity.", want: math.Inf(1)},
		{name: "минус бесконечность", in: "-Infinity", want: math.Inf(-1)},
		{name: "пусто", in: "", wantErr: true},
		{name: "одна точка", in: ".", wantErr: true},
		{name: "не число", in: "NaN", wantErr: true},
		{name: "не число с точкой", in: "NaN.", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOperand(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedOperand) {
					t.Fatalf("ParseOperand(%q) error = %v, want ErrMalformedOperand", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOperand(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseOperand(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseOperand_OutOfRange(t *testing.T) {
	got, err := ParseOperand("1e400")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("ParseOperand(1e400) = %v, want +Inf", got)
	}
}
