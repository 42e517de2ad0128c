package calculator

import (
	"math"

	"calcpad/internal/domain"
)

// DigitRequest — нажатие цифровой клавиши (для POST /api/v1/keypad/digit).
type DigitRequest struct {
	Digit string `json:"digit" binding:"required"`
}

// OperatorRequest — нажатие клавиши оператора: глиф (+ - * /) или имя (add, subtract, multiply, divide).
type OperatorRequest struct {
	Operator string `json:"operator" binding:"required"`
}

// DisplayResponse — строки дисплея после события.
type DisplayResponse struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// ErrorResponse — ошибка с текущим дисплеем (состояние при ошибке не меняется).
type ErrorResponse struct {
	Error   string           `json:"error"`
	Display *DisplayResponse `json:"display,omitempty"`
}

// RecordResponse — завершённое вычисление. Result = nil для Infinity/NaN.
type RecordResponse struct {
	Expression string   `json:"expression"`
	Result     *float64 `json:"result"`
	Timestamp  string   `json:"timestamp"`
}

// EqualsResponse — ответ на "=": дисплей и запись, если вычисление произошло.
type EqualsResponse struct {
	DisplayResponse
	Record *RecordResponse `json:"record,omitempty"`
}

// HistoryItem — строка панели истории.
type HistoryItem struct {
	Expression string `json:"expression"`
	Timestamp  string `json:"timestamp"`
}

// HistoryResponse — открытая панель истории.
type HistoryResponse struct {
	Items       []HistoryItem `json:"items"`
	Empty       bool          `json:"empty"`
	Placeholder string        `json:"placeholder,omitempty"`
}

func toDisplay(d domain.Display) DisplayResponse {
	return DisplayResponse{Primary: d.Primary, Secondary: d.Secondary}
}

func toRecord(rec *domain.CalculationRecord) *RecordResponse {
	if rec == nil {
		return nil
	}
	out := &RecordResponse{Expression: rec.Expression, Timestamp: rec.Timestamp}
	if !math.IsNaN(rec.Result) && !math.IsInf(rec.Result, 0) {
		v := rec.Result
		out.Result = &v
	}
	return out
}

func toHistory(p domain.HistoryPanel) HistoryResponse {
	items := make([]HistoryItem, len(p.Items))
	for i, it := range p.Items {
		items[i] = HistoryItem{Expression: it.Expression, Timestamp: it.Timestamp}
	}
	return HistoryResponse{Items: items, Empty: p.Empty, Placeholder: p.Placeholder}
}
