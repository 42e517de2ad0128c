package history

import (
	"context"
	"encoding/json"
	"fmt"

	"calcpad/internal/domain"
)

// Load читает снимок истории. Нет слота, ошибка хранилища или битый JSON — пустая история.
func (u *UseCase) Load(ctx context.Context) []domain.CalculationRecord {
	data, found, err := u.kv.Get(ctx, SlotKey)
	if err != nil {
		u.log.Warn("history load failed", "key", SlotKey, "error", err)
		return []domain.CalculationRecord{}
	}
	if !found {
		return []domain.CalculationRecord{}
	}

	var list []domain.CalculationRecord
	if err := json.Unmarshal(data, &list); err != nil {
		u.log.Warn("history snapshot is corrupt, ignoring", "key", SlotKey, "error", err)
		return []domain.CalculationRecord{}
	}
	if list == nil {
		return []domain.CalculationRecord{}
	}
	if len(list) > domain.HistoryCapacity {
		list = list[:domain.HistoryCapacity]
	}
	return list
}

// Record добавляет запись в начало истории, отбрасывает самые старые сверх domain.HistoryCapacity и сохраняет снимок.
func (u *UseCase) Record(ctx context.Context, rec domain.CalculationRecord) error {
	current := u.Load(ctx)

	list := make([]domain.CalculationRecord, 0, len(current)+1)
	list = append(list, rec)
	list = append(list, current...)
	if len(list) > domain.HistoryCapacity {
		list = list[:domain.HistoryCapacity]
	}

	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("history encode: %w", err)
	}
	if err := u.kv.Set(ctx, SlotKey, data); err != nil {
		return fmt.Errorf("history save: %w", err)
	}
	u.log.Debug("history recorded", "expression", rec.Expression, "size", len(list))
	return nil
}

// Clear удаляет снимок целиком; следующий Load вернёт пустую историю.
func (u *UseCase) Clear(ctx context.Context) error {
	if err := u.kv.Remove(ctx, SlotKey); err != nil {
		return fmt.Errorf("history clear: %w", err)
	}
	u.log.Info("history cleared")
	return nil
}

// Panel — содержимое панели истории.
func (u *UseCase) Panel(ctx context.Context) domain.HistoryPanel {
	return domain.NewHistoryPanel(u.Load(ctx))
}
