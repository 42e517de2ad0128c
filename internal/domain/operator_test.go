package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperator_Apply(t *testing.T) {
	tests := []struct {
		op   Operator
		a, b float64
		want float64
	}{
		{OpAdd, 3, 4, 7},
		{OpSub, 3, 4, -1},
		{OpMul, 7, 6, 42},
		{OpDiv, 1, 4, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.op.Name(), func(t *testing.T) {
			got, err := tt.op.Apply(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOperator_Apply_Errors(t *testing.T) {
	_, err := OpDiv.Apply(5, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = OpDiv.Apply(5, math.Copysign(0, -1))
	assert.ErrorIs(t, err, ErrDivisionByZero, "минус ноль тоже ноль")

	_, err = OpNone.Apply(1, 2)
	assert.ErrorIs(t, err, ErrUnknownOperator)
}

func TestParseOperator(t *testing.T) {
	for _, op := range Operators() {
		byGlyph, err := ParseOperator(op.Glyph())
		require.NoError(t, err)
		assert.Equal(t, op, byGlyph)

		byName, err := ParseOperator(op.Name())
		require.NoError(t, err)
		assert.Equal(t, op, byName)
	}

	_, err := ParseOperator("%")
	assert.ErrorIs(t, err, ErrUnknownOperator)
	_, err = ParseOperator("")
	assert.ErrorIs(t, err, ErrUnknownOperator)
}

func TestCalculatorState_Display(t *testing.T) {
	s := NewCalculatorState()
	assert.Equal(t, Display{Primary: "0"}, s.Display())

	s = CalculatorState{CurrentOperand: "4", PreviousOperand: "3", Operation: OpAdd}
	assert.Equal(t, Display{Primary: "4", Secondary: "3 +"}, s.Display())

	// Без оператора вспомогательная строка пустая.
	s = CalculatorState{CurrentOperand: "4", PreviousOperand: "3"}
	assert.Equal(t, "", s.Display().Secondary)
}

func TestCalculationRecord_JSON(t *testing.T) {
	rec := CalculationRecord{Expression: "7 * 6 = 42", Result: 42, Timestamp: "10/14/2026, 4:42:00 PM"}
	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"expression":"7 * 6 = 42","result":42,"timestamp":"10/14/2026, 4:42:00 PM"}`, string(data))

	var back CalculationRecord
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, rec, back)
}

func TestCalculationRecord_JSON_NonFinite(t *testing.T) {
	rec := CalculationRecord{Expression: "1e+308 * 10 = Infinity", Result: math.Inf(1)}
	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"result":null`)

	var back CalculationRecord
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, math.IsNaN(back.Result))
	assert.Equal(t, rec.Expression, back.Expression)
}

func TestNewHistoryPanel(t *testing.T) {
	empty := NewHistoryPanel(nil)
	assert.True(t, empty.Empty)
	assert.Equal(t, HistoryPlaceholder, empty.Placeholder)
	assert.Empty(t, empty.Items)

	panel := NewHistoryPanel([]CalculationRecord{
		{Expression: "2 + 2 = 4", Result: 4, Timestamp: "t2"},
		{Expression: "1 + 1 = 2", Result: 2, Timestamp: "t1"},
	})
	assert.False(t, panel.Empty)
	require.Len(t, panel.Items, 2)
	assert.Equal(t, HistoryPanelItem{Expression: "2 + 2 = 4", Timestamp: "t2"}, panel.Items[0])
}

func TestIsDigit(t *testing.T) {
	for _, d := range []string{"0", "5", "9", "."} {
		assert.True(t, IsDigit(d), d)
	}
	for _, d := range []string{"", "a", "12", "+", "-"} {
		assert.False(t, IsDigit(d), d)
	}
}
