package app

import (
	"context"
	"fmt"
	"log/slog"

	"calcpad/internal/infrastructure/memory"
	"calcpad/internal/infrastructure/mongo"
	"calcpad/internal/infrastructure/pg"
	"calcpad/internal/infrastructure/redis"
	"calcpad/internal/infrastructure/sqlite"
	"calcpad/internal/ports"
)

// openStorage подключает key-value слот по CALCULATOR_STORAGE_DRIVER. Возвращённый closer нужно вызвать при остановке.
func openStorage(ctx context.Context, cfg Config, log *slog.Logger) (ports.IKeyValueStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Storage.Driver {
	case DriverMemory:
		return memory.New(), noop, nil

	case DriverSQLite, "":
		db, err := sqlite.New(ctx, &cfg.SQLite)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite: %w", err)
		}
		log.Info("storage: sqlite", "file", db.File())
		return sqlite.NewSlotStore(db, log), db.Close, nil

	case DriverRedis:
		cli, err := redis.New(ctx, &cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("redis: %w", err)
		}
		log.Info("storage: redis", "addr", cfg.Redis.Addr())
		return redis.NewSlotStore(cli, log), cli.Close, nil

	case DriverPostgres:
		db, err := pg.New(ctx, &cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("db: %w", err)
		}
		if err := pg.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		log.Info("storage: postgres", "host", cfg.DB.Host, "database", cfg.DB.DBName)
		return pg.NewSlotStore(db, log), db.Close, nil

	case DriverMongo:
		cli, err := mongo.New(ctx, &cfg.Mongo)
		if err != nil {
			return nil, nil, fmt.Errorf("mongo: %w", err)
		}
		log.Info("storage: mongo", "database", cfg.Mongo.Database, "collection", cfg.Mongo.Collection)
		return mongo.NewSlotStore(cli, log), cli.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
