package store

import (
	"context"
	"fmt"
	"os"
	"shop-admin/internal/observability"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
)

// TestDB wraps a migrated test database instance
type TestDB struct {
	db    *sqlx.DB
	Store Store
}

// SetupTestDB connects to the PostgreSQL instance described by TEST_DB_*
// variables, applies migrations and truncates every table. The test is
// skipped when no database is reachable.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	connStr := testConnectionString()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	db, err := sqlx.Open("pgx", connStr)
	if err != nil {
		t.Skipf("skipping: cannot open test database: %v", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		t.Skipf("skipping: test database not reachable: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	if err := Migrate(ctx, connStr); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	tdb := &TestDB{
		db:    db,
		Store: Store{db: db, logger: observability.NewNopLogger()},
	}
	tdb.Truncate(t)
	return tdb
}

func testConnectionString() string {
	if url := os.Getenv("TEST_DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		envOr("TEST_DB_USER", "shop_user"),
		envOr("TEST_DB_PASSWORD", "shop_password"),
		envOr("TEST_DB_HOST", "localhost"),
		envOr("TEST_DB_PORT", "5432"),
		envOr("TEST_DB_NAME", "shop_test"),
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Truncate clears all rows while preserving schema
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()
	if _, err := tdb.db.Exec("TRUNCATE TABLE products, posts, subscribers, settings"); err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

// MustExec executes SQL and fails the test if there's an error
func (tdb *TestDB) MustExec(t *testing.T, query string, args ...interface{}) {
	t.Helper()
	if _, err := tdb.db.Exec(query, args...); err != nil {
		t.Fatalf("failed to execute SQL: %v", err)
	}
}
