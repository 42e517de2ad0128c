package domain

import (
	"encoding/json"
	"math"
)

// HistoryCapacity — сколько последних вычислений хранит история.
const HistoryCapacity = 10

// HistoryPlaceholder показывается в панели истории, когда записей нет.
const HistoryPlaceholder = "No calculations yet"

// CalculationRecord — одна завершённая операция. Сериализуется в историю как
// {"expression": "7 * 6 = 42", "result": 42, "timestamp": "..."}.
type CalculationRecord struct {
	Expression string  `json:"expression"`
	Result     float64 `json:"result"`
	Timestamp  string  `json:"timestamp"`
}

type recordJSON struct {
	Expression string   `json:"expression"`
	Result     *float64 `json:"result"`
	Timestamp  string   `json:"timestamp"`
}

// MarshalJSON пишет нечисловой результат (Inf, NaN) как null: encoding/json их не умеет.
func (r CalculationRecord) MarshalJSON() ([]byte, error) {
	doc := recordJSON{Expression: r.Expression, Timestamp: r.Timestamp}
	if !math.IsNaN(r.Result) && !math.IsInf(r.Result, 0) {
		v := r.Result
		doc.Result = &v
	}
	return json.Marshal(doc)
}

// UnmarshalJSON читает null в result как NaN.
func (r *CalculationRecord) UnmarshalJSON(data []byte) error {
	var doc recordJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	r.Expression = doc.Expression
	r.Timestamp = doc.Timestamp
	if doc.Result == nil {
		r.Result = math.NaN()
	} else {
		r.Result = *doc.Result
	}
	return nil
}

// HistoryPanelItem — строка панели истории.
type HistoryPanelItem struct {
	Expression string
	Timestamp  string
}

// HistoryPanel — то, что показывает открытая панель истории.
type HistoryPanel struct {
	Items       []HistoryPanelItem
	Empty       bool
	Placeholder string
}

// NewHistoryPanel строит панель по логу (новые сначала).
func NewHistoryPanel(log []CalculationRecord) HistoryPanel {
	if len(log) == 0 {
		return HistoryPanel{Items: []HistoryPanelItem{}, Empty: true, Placeholder: HistoryPlaceholder}
	}
	items := make([]HistoryPanelItem, len(log))
	for i, rec := range log {
		items[i] = HistoryPanelItem{Expression: rec.Expression, Timestamp: rec.Timestamp}
	}
	return HistoryPanel{Items: items}
}
