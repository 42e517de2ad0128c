package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	apihttp "calcpad/internal/api/http"
	"calcpad/internal/api/http/controllers/calculator"
	"calcpad/internal/api/http/controllers/system"
	"calcpad/internal/infrastructure/click"
	"calcpad/internal/infrastructure/kafka"
	"calcpad/internal/pkg/logger"
	"calcpad/internal/ports"
	calcUsecase "calcpad/internal/usecase/calculator"
	historyUsecase "calcpad/internal/usecase/history"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (хранилище подключается в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run подключает хранилище истории, опционально Kafka и ClickHouse, и запускает HTTP-сервер (блокирующий вызов).
func (a *App) Run() error {
	log := logger.New(a.cfg.Log)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStorage(ctx, a.cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	hist := historyUsecase.New(store, log)

	var producer ports.IProducer
	if a.cfg.Kafka.Enabled {
		p := kafka.NewProducer(&a.cfg.Kafka)
		defer p.Close()
		producer = p
	}

	var analytics ports.ICalculationAnalytics
	if a.cfg.ClickHouse.Enabled {
		if !a.cfg.Kafka.Enabled {
			return errors.New("clickhouse analytics requires kafka (CALCULATOR_KAFKA_ENABLED=true)")
		}
		ch, err := click.New(ctx, &a.cfg.ClickHouse)
		if err != nil {
			return fmt.Errorf("clickhouse: %w", err)
		}
		defer ch.Close()
		w := click.NewCalculationWriter(ch)
		if err := w.EnsureTable(ctx); err != nil {
			return fmt.Errorf("clickhouse table: %w", err)
		}
		analytics = w
	}

	uc := calcUsecase.New(a.cfg.History, hist, producer, analytics, log)

	if analytics != nil {
		consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
		defer consumer.Close()
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("analytics consumer failed", "error", err)
			}
		}()
	}

	srv := apihttp.NewServer(a.cfg.Server, log)
	srv.AddController(
		system.New(store, log),
		calculator.New(uc, hist, log))

	log.Info("application started",
		"http", a.cfg.Server.Addr(),
		"storage", a.cfg.Storage.Driver,
		"kafka", a.cfg.Kafka.Enabled,
		"clickhouse", a.cfg.ClickHouse.Enabled)
	return srv.Start(ctx)
}
