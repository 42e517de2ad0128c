// Package testutil содержит хелперы для интеграционных тестов хранилищ.
// Контейнеры поднимаются через testcontainers; без Docker или в -short режиме тесты пропускаются.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startupTimeout — сколько ждём готовности контейнера.
const startupTimeout = 60 * time.Second

// Endpoint — адрес проброшенного порта контейнера.
type Endpoint struct {
	Host string
	Port string
}

// Addr возвращает "host:port".
func (e Endpoint) Addr() string {
	return fmt.Sprintf("%s:%s", e.Host, e.Port)
}

// endpoint достаёт host и проброшенный порт контейнера.
func endpoint(ctx context.Context, c testcontainers.Container, port string) (Endpoint, error) {
	host, err := c.Host(ctx)
	if err != nil {
		return Endpoint{}, fmt.Errorf("container host: %w", err)
	}
	mapped, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return Endpoint{}, fmt.Errorf("container port %s: %w", port, err)
	}
	return Endpoint{Host: host, Port: mapped.Port()}, nil
}

// Start поднимает контейнер через run и регистрирует его остановку в t.Cleanup.
// В -short режиме и при недоступном Docker тест пропускается.
func Start[C testcontainers.Container](t *testing.T, name string, run func(ctx context.Context) (C, error)) C {
	t.Helper()
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*startupTimeout)
	defer cancel()

	c, err := run(ctx)
	if err != nil {
		t.Skipf("%s недоступен (нужен Docker): %v", name, err)
	}
	t.Cleanup(func() {
		if err := c.Terminate(context.Background()); err != nil {
			t.Logf("остановка %s: %v", name, err)
		}
	})
	return c
}

// RedisEndpoint поднимает Redis и возвращает его адрес.
func RedisEndpoint(t *testing.T) Endpoint {
	t.Helper()
	c := Start(t, "redis", func(ctx context.Context) (*redis.RedisContainer, error) {
		return redis.Run(ctx,
			"redis:7-alpine",
			testcontainers.WithWaitStrategy(
				wait.ForLog("Ready to accept connections").
					WithStartupTimeout(startupTimeout),
			),
		)
	})
	return mustEndpoint(t, c, "6379")
}

// PostgresDB — параметры подключения к тестовому PostgreSQL.
type PostgresDB struct {
	Endpoint
	User     string
	Password string
	DBName   string
}

// PostgresEndpoint поднимает PostgreSQL и возвращает параметры подключения.
func PostgresEndpoint(t *testing.T) PostgresDB {
	t.Helper()
	db := PostgresDB{User: "test", Password: "test", DBName: "testdb"}
	c := Start(t, "postgres", func(ctx context.Context) (*postgres.PostgresContainer, error) {
		return postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase(db.DBName),
			postgres.WithUsername(db.User),
			postgres.WithPassword(db.Password),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(startupTimeout),
			),
		)
	})
	db.Endpoint = mustEndpoint(t, c, "5432")
	return db
}

// MongoURI поднимает MongoDB и возвращает строку подключения для mongo-driver.
func MongoURI(t *testing.T) string {
	t.Helper()
	c := Start(t, "mongo", func(ctx context.Context) (*mongodb.MongoDBContainer, error) {
		return mongodb.Run(ctx,
			"mongo:7",
			testcontainers.WithWaitStrategy(
				wait.ForLog("Waiting for connections").
					WithStartupTimeout(startupTimeout),
			),
		)
	})
	e := mustEndpoint(t, c, "27017")
	return fmt.Sprintf("mongodb://%s", e.Addr())
}

// ClickHouseDB — параметры подключения к тестовому ClickHouse (нативный протокол).
type ClickHouseDB struct {
	Endpoint
	User     string
	Password string
	Database string
}

// ClickHouseEndpoint поднимает ClickHouse и возвращает параметры подключения.
func ClickHouseEndpoint(t *testing.T) ClickHouseDB {
	t.Helper()
	db := ClickHouseDB{User: "default", Password: "", Database: "default"}
	c := Start(t, "clickhouse", func(ctx context.Context) (*clickhouse.ClickHouseContainer, error) {
		return clickhouse.Run(ctx,
			"clickhouse/clickhouse-server:24-alpine",
			clickhouse.WithUsername(db.User),
			clickhouse.WithPassword(db.Password),
			clickhouse.WithDatabase(db.Database),
		)
	})
	db.Endpoint = mustEndpoint(t, c, "9000")
	return db
}

func mustEndpoint(t *testing.T, c testcontainers.Container, port string) Endpoint {
	t.Helper()
	e, err := endpoint(context.Background(), c, port)
	if err != nil {
		t.Fatalf("endpoint: %v", err)
	}
	return e
}
