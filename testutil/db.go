// Package testutil provides shared helpers for integration tests.
// Helpers in this package skip automatically when no backing service is
// configured, so unit tests run without a database or Redis.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	containerOnce sync.Once
	containerDSN  string
	containerErr  error
)

// DSN resolves the Postgres connection string for integration tests.
//
//   - TEST_DATABASE_URL wins when set.
//   - Otherwise, TEST_USE_CONTAINERS=1 starts one throwaway Postgres container
//     per test binary (reaped by testcontainers when the binary exits).
//   - Otherwise DSN returns "" and integration tests skip.
func DSN() (string, error) {
	if dsn := os.Getenv("TEST_DATABASE_URL"); dsn != "" {
		return dsn, nil
	}
	if os.Getenv("TEST_USE_CONTAINERS") != "1" {
		return "", nil
	}
	containerOnce.Do(func() {
		containerDSN, containerErr = startPostgres(context.Background())
	})
	return containerDSN, containerErr
}

// startPostgres runs a postgres:16-alpine container and returns its DSN.
func startPostgres(ctx context.Context) (string, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "booking",
			"POSTGRES_PASSWORD": "booking",
			"POSTGRES_DB":       "booking_test",
		},
		// Postgres logs the ready line twice: once for the init server, once for the real one.
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("testutil.startPostgres: start container: %w", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("testutil.startPostgres: host: %w", err)
	}
	port, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return "", fmt.Errorf("testutil.startPostgres: mapped port: %w", err)
	}

	return fmt.Sprintf("postgres://booking:booking@%s:%s/booking_test?sslmode=disable", host, port.Port()), nil
}

// NewPool opens a *pgxpool.Pool against the integration test database.
// The test is skipped when no database is configured. The pool is closed
// when the test (and all its subtests) finish.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := requireDSN(t)

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("testutil.NewPool: open pool: %v", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// NewSQLDB opens a *sql.DB against the integration test database using the
// pgx database/sql driver. Use it where goose needs database/sql.
// The connection is closed when the test finishes.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := requireDSN(t)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: open: %v", err)
	}

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		t.Fatalf("testutil.NewSQLDB: ping: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// MustOpenSQLDB opens a *sql.DB for the given DSN and panics on any error.
// Use this in TestMain functions where no *testing.T is available.
// Callers are responsible for closing the returned *sql.DB.
func MustOpenSQLDB(dsn string) *sql.DB {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		panic("testutil.MustOpenSQLDB: open: " + err.Error())
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		panic("testutil.MustOpenSQLDB: ping: " + err.Error())
	}
	return db
}

// NewRedisClient connects to the Redis named by TEST_REDIS_ADDR, skipping
// the test when it is not set. The client is closed when the test finishes.
func NewRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set; skipping redis integration test")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		t.Fatalf("testutil.NewRedisClient: ping: %v", err)
	}

	t.Cleanup(func() { client.Close() })
	return client
}

// requireDSN returns the integration DSN, skipping the test when none is configured.
func requireDSN(t *testing.T) string {
	t.Helper()
	dsn, err := DSN()
	if err != nil {
		t.Fatalf("testutil: %v", err)
	}
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}
	return dsn
}
