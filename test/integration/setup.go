package integration

import (
	"context"
	"testing"
	"time"

	"techmart/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, a connection pool and
// the catalog schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := database.NewPoolFromURL(ctx, connStr, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := database.Migrate(ctx, pool, zerolog.Nop()); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SeedProducts inserts a small sample catalog and returns the inserted
// IDs in insertion order.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) []string {
	t.Helper()

	ctx := context.Background()

	products := []struct {
		name     string
		category string
		desc     string
		specs    []string
		price    float64
		stock    int
	}{
		{"UltraBook Pro 15", "Laptops", "16GB RAM, 512GB SSD", []string{"16GB RAM", "512GB SSD"}, 1499.99, 7},
		{"Gamer Tower X", "Desktops", "32GB RAM, RTX 4070", []string{"32GB RAM", "RTX 4070"}, 1899.00, 15},
		{"Compact Keyboard", "Accessories", "Bluetooth, backlit", []string{"Bluetooth", "backlit"}, 49.99, 120},
		{"USB-C Hub", "Accessories", "7 ports", []string{"7 ports"}, 29.99, 0},
		{"Budget Laptop 14", "Laptops", "8GB RAM, 256GB SSD", []string{"8GB RAM", "256GB SSD"}, 549.00, 3},
	}

	// Staggered timestamps keep created_at ordering deterministic.
	base := time.Now().UTC().Add(-time.Hour)

	ids := make([]string, 0, len(products))
	for i, p := range products {
		id := uuid.New().String()
		createdAt := base.Add(time.Duration(i) * time.Minute)
		_, err := pool.Exec(ctx,
			`INSERT INTO products (id, name, category, description, specs, price, stock, images, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			id, p.name, p.category, p.desc, p.specs, p.price, p.stock, []string{}, createdAt, createdAt,
		)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.name, err)
		}
		ids = append(ids, id)
	}
	return ids
}

// CleanupDB removes all catalog rows between tests.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), "DELETE FROM products"); err != nil {
		t.Logf("failed to clean products table: %v", err)
	}
}
