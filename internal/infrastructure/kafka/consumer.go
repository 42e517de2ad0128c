package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"calcpad/internal/domain"
	"calcpad/internal/ports"
)

// Consumer — обёртка над kafka.Reader, декодирует сообщения в domain.CalculationRecord и вызывает use case.
type Consumer struct {
	r   *kafka.Reader
	uc  ports.ICalculatorUseCase
	log *slog.Logger
}

// NewConsumer создаёт консьюмера по конфигу, use case и логгеру. После использования вызови Close().
func NewConsumer(cfg *Config, uc ports.ICalculatorUseCase, log *slog.Logger) *Consumer {
	if log == nil {
		log = slog.Default()
	}
	c := New(cfg).Consumer()
	c.uc = uc
	c.log = log
	return c
}

// messageFetcher — то, что Consumer берёт от kafka.Reader.
type messageFetcher interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Run в цикле читает сообщения, декодирует JSON в domain.CalculationRecord, вызывает uc.HandleCalculationEvent и коммитит при успехе.
// Выход по отмене ctx или при ошибке чтения.
func (c *Consumer) Run(ctx context.Context) error {
	return c.run(ctx, c.r)
}

func (c *Consumer) run(ctx context.Context, src messageFetcher) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := src.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped", "error", err)
			return err
		}

		var rec domain.CalculationRecord
		if err := json.Unmarshal(msg.Value, &rec); err != nil {
			c.log.Warn("kafka unmarshal error, skip", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
			_ = src.CommitMessages(ctx, msg)
			continue
		}

		if err := c.uc.HandleCalculationEvent(ctx, rec, msg.Time); err != nil {
			c.log.Warn("kafka handle error, left uncommitted", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
			continue
		}

		if err := src.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped (commit)", "error", err)
			return err
		}
	}
}

// Close закрывает консьюмера.
func (c *Consumer) Close() error {
	return c.r.Close()
}
