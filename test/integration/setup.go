package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"shopdesk/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
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

// SetupTestDB creates a PostgreSQL test container and connection pool.
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

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

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

// createSchema creates the database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS owners (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255),
			mobile VARCHAR(20) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			shop_name VARCHAR(255),
			address TEXT,
			otp_code VARCHAR(10),
			otp_expires_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS shops (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL REFERENCES owners(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			location TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS customers (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL REFERENCES owners(id) ON DELETE CASCADE,
			shop_id UUID NOT NULL REFERENCES shops(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255),
			phone VARCHAR(20),
			address TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS products (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL REFERENCES owners(id) ON DELETE CASCADE,
			shop_id UUID NOT NULL REFERENCES shops(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			price NUMERIC NOT NULL,
			description TEXT,
			image_key VARCHAR(512),
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS offers (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL REFERENCES owners(id) ON DELETE CASCADE,
			shop_id UUID NOT NULL REFERENCES shops(id) ON DELETE CASCADE,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			discount_percent NUMERIC NOT NULL,
			valid_until TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS invoices (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL REFERENCES owners(id) ON DELETE CASCADE,
			shop_id UUID NOT NULL REFERENCES shops(id) ON DELETE CASCADE,
			customer_id UUID NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
			status VARCHAR(20) NOT NULL,
			discount_percent NUMERIC NOT NULL,
			subtotal NUMERIC NOT NULL,
			discount_amount NUMERIC NOT NULL,
			total NUMERIC NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS invoice_items (
			id UUID PRIMARY KEY,
			invoice_id UUID NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
			product_id UUID NOT NULL,
			product_name VARCHAR(255) NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			rate NUMERIC NOT NULL,
			position INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS inquiries (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255),
			message TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_shops_owner_id ON shops(owner_id);
		CREATE INDEX IF NOT EXISTS idx_customers_shop ON customers(owner_id, shop_id);
		CREATE INDEX IF NOT EXISTS idx_products_shop ON products(owner_id, shop_id);
		CREATE INDEX IF NOT EXISTS idx_offers_shop ON offers(owner_id, shop_id);
		CREATE INDEX IF NOT EXISTS idx_invoices_shop ON invoices(owner_id, shop_id);
		CREATE INDEX IF NOT EXISTS idx_invoice_items_invoice_id ON invoice_items(invoice_id);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedTenant inserts an owner with one shop and returns the tenant ref.
func SeedTenant(t *testing.T, pool *pgxpool.Pool, name string) model.ShopRef {
	t.Helper()

	ctx := context.Background()
	ownerID := uuid.New()
	shopID := uuid.New()

	_, err := pool.Exec(ctx,
		`INSERT INTO owners (id, name, email, mobile, password_hash, shop_name, address, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		ownerID, name, name+"@example.com", fmt.Sprintf("98%08d", time.Now().UnixNano()%100000000),
		"$2a$10$test.hash.placeholder", name+"'s Shop", "Test Street", time.Now().UTC())
	if err != nil {
		t.Fatalf("failed to seed owner %s: %v", name, err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO shops (id, owner_id, name, location, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		shopID, ownerID, name+"'s Shop", "Test Street", time.Now().UTC())
	if err != nil {
		t.Fatalf("failed to seed shop for %s: %v", name, err)
	}

	return model.NewShopRef(ownerID, shopID)
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"invoice_items", "invoices", "offers", "products", "customers", "inquiries", "shops", "owners"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
