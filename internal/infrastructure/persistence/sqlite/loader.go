package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"shopdata/internal/domain/repository"
	"shopdata/internal/infrastructure/persistence"
	"shopdata/internal/infrastructure/persistence/csvstore"
	"shopdata/pkg/logger"
)

// Store loads, verifies and queries the SQLite database.
type Store struct {
	db  *sql.DB
	log logger.Logger
}

func NewStore(db *sql.DB, log logger.Logger) *Store {
	return &Store{db: db, log: log}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load recreates the schema and imports ds in a single transaction; on any
// failure the database is left as it was.
func (s *Store) Load(ctx context.Context, ds *repository.Dataset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin load: %w", err)
	}
	defer tx.Rollback()

	for _, table := range persistence.DropOrder {
		if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return &repository.LoadError{Table: table, Err: fmt.Errorf("drop: %w", err)}
		}
	}
	for i, stmt := range createTables {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return &repository.LoadError{Table: repository.Tables[i], Err: fmt.Errorf("create: %w", err)}
		}
	}

	for _, table := range repository.Tables {
		rows := tableRows(ds, table)
		if err := insertRows(ctx, tx, table, rows); err != nil {
			return err
		}
		s.log.Info("imported table", logger.String("table", table), logger.Int("rows", len(rows)))
	}

	for _, stmt := range persistence.Indexes {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit load: %w", err)
	}
	return nil
}

func insertRows(ctx context.Context, tx *sql.Tx, table string, rows [][]any) error {
	cols := csvstore.Columns(table)
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ","), strings.TrimSuffix(strings.Repeat("?,", len(cols)), ","))

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return &repository.LoadError{Table: table, Err: fmt.Errorf("prepare insert: %w", err)}
	}
	defer stmt.Close()

	for i, vals := range rows {
		if _, err := stmt.ExecContext(ctx, vals...); err != nil {
			return &repository.LoadError{Table: table, Row: i + 1, Err: err}
		}
	}
	return nil
}

// Verify implements repository.Verifier.
func (s *Store) Verify(ctx context.Context) (*repository.Verification, error) {
	return persistence.Verify(ctx, s)
}

func (s *Store) QueryRowScan(ctx context.Context, query string, dest ...any) error {
	return s.db.QueryRowContext(ctx, query).Scan(dest...)
}
