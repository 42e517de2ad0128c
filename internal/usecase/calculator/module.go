package calculator

import (
	"log/slog"
	"time"

	"calcpad/internal/domain"
	"calcpad/internal/ports"
)

// DefaultTimeLayout — формат отметки времени в истории (как toLocaleString в en-US).
const DefaultTimeLayout = "1/2/2006, 3:04:05 PM"

// Config — настройки калькулятора. Переменные: CALCULATOR_HISTORY_TIME_LAYOUT.
type Config struct {
	TimeLayout string `envconfig:"TIME_LAYOUT" default:"1/2/2006, 3:04:05 PM"`
}

var _ ports.ICalculatorUseCase = (*UseCase)(nil)

// UseCase — машина ввода калькулятора. Держит состояние одного калькулятора;
// события подаются по одному, блокировок внутри нет.
type UseCase struct {
	state      domain.CalculatorState
	history    ports.IHistoryStore
	broker     ports.IProducer
	analytics  ports.ICalculationAnalytics
	timeLayout string
	now        func() time.Time
	log        *slog.Logger
}

// New создаёт калькулятор в начальном состоянии. broker и analytics могут быть nil.
func New(cfg Config, history ports.IHistoryStore, broker ports.IProducer, analytics ports.ICalculationAnalytics, log *slog.Logger) *UseCase {
	if log == nil {
		log = slog.Default()
	}
	layout := cfg.TimeLayout
	if layout == "" {
		layout = DefaultTimeLayout
	}
	return &UseCase{
		state:      domain.NewCalculatorState(),
		history:    history,
		broker:     broker,
		analytics:  analytics,
		timeLayout: layout,
		now:        time.Now,
		log:        log,
	}
}

// expression формирует строку истории, например "7 * 6 = 42".
func expression(prev float64, op domain.Operator, current, result float64) string {
	return domain.FormatNumber(prev) + " " + op.Glyph() + " " + domain.FormatNumber(current) + " = " + domain.FormatNumber(result)
}
