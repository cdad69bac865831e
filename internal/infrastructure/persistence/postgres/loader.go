package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"shopdata/internal/domain/repository"
	"shopdata/internal/infrastructure/persistence"
	"shopdata/internal/infrastructure/persistence/csvstore"
	"shopdata/pkg/logger"
)

var createTables = []string{
	`CREATE TABLE customers (
		customer_id INTEGER PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		phone TEXT,
		registration_date DATE NOT NULL,
		country TEXT,
		city TEXT,
		postal_code TEXT
	)`,
	`CREATE TABLE products (
		product_id INTEGER PRIMARY KEY,
		product_name TEXT NOT NULL,
		category TEXT NOT NULL,
		brand TEXT,
		price NUMERIC(10, 2) NOT NULL,
		stock_quantity INTEGER DEFAULT 0,
		supplier_id INTEGER
	)`,
	`CREATE TABLE orders (
		order_id INTEGER PRIMARY KEY,
		customer_id INTEGER NOT NULL REFERENCES customers(customer_id),
		order_date DATE NOT NULL,
		order_status TEXT CHECK(order_status IN ('Pending', 'Processing', 'Shipped', 'Delivered', 'Cancelled')),
		total_amount NUMERIC(10, 2) NOT NULL,
		shipping_address TEXT,
		payment_method TEXT
	)`,
	`CREATE TABLE order_items (
		order_item_id INTEGER PRIMARY KEY,
		order_id INTEGER NOT NULL REFERENCES orders(order_id),
		product_id INTEGER NOT NULL REFERENCES products(product_id),
		quantity INTEGER NOT NULL CHECK(quantity > 0),
		unit_price NUMERIC(10, 2) NOT NULL,
		subtotal NUMERIC(10, 2) NOT NULL
	)`,
	`CREATE TABLE reviews (
		review_id INTEGER PRIMARY KEY,
		product_id INTEGER NOT NULL REFERENCES products(product_id),
		customer_id INTEGER NOT NULL REFERENCES customers(customer_id),
		rating INTEGER CHECK(rating >= 1 AND rating <= 5),
		review_text TEXT,
		review_date DATE NOT NULL
	)`,
}

// Store loads and verifies the dataset in PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
	log  logger.Logger
}

func NewStore(pool *pgxpool.Pool, log logger.Logger) *Store {
	return &Store{pool: pool, log: log}
}

// Load recreates the schema and bulk-copies every table inside one
// transaction.
func (s *Store) Load(ctx context.Context, ds *repository.Dataset) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin load: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, table := range persistence.DropOrder {
		if _, err := tx.Exec(ctx, "DROP TABLE IF EXISTS "+table+" CASCADE"); err != nil {
			return &repository.LoadError{Table: table, Err: fmt.Errorf("drop: %w", err)}
		}
	}
	for i, stmt := range createTables {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return &repository.LoadError{Table: repository.Tables[i], Err: fmt.Errorf("create: %w", err)}
		}
	}

	for _, table := range repository.Tables {
		rows := copyRows(ds, table)
		n, err := tx.CopyFrom(ctx, pgx.Identifier{table}, csvstore.Columns(table), pgx.CopyFromRows(rows))
		if err != nil {
			return &repository.LoadError{Table: table, Err: describe(err)}
		}
		s.log.Info("imported table", logger.String("table", table), logger.Int64("rows", n))
	}

	for _, stmt := range persistence.Indexes {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// describe keeps the server's detail line, which names the offending key.
func describe(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Detail != "" {
		return fmt.Errorf("%w (%s)", err, pgErr.Detail)
	}
	return err
}

func (s *Store) Verify(ctx context.Context) (*repository.Verification, error) {
	return persistence.Verify(ctx, s)
}

func (s *Store) QueryRowScan(ctx context.Context, query string, dest ...any) error {
	return s.pool.QueryRow(ctx, query).Scan(dest...)
}
