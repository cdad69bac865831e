package csvstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"shopdata/internal/domain/catalog"
	"shopdata/internal/domain/order"
	"shopdata/internal/domain/repository"
	"shopdata/internal/domain/review"
)

const pendingMarker = ".replace-pending"

// Store reads and writes the record sets as <table>.csv files in one directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(table string) string {
	return filepath.Join(s.dir, table+".csv")
}

// Exists reports whether every named table has a file on disk.
func (s *Store) Exists(tables ...string) bool {
	for _, t := range tables {
		if _, err := os.Stat(s.path(t)); err != nil {
			return false
		}
	}
	return true
}

func (s *Store) ReadCustomers(ctx context.Context) ([]catalog.Customer, error) {
	return readTable(ctx, s, repository.TableCustomers, decodeCustomer)
}

func (s *Store) ReadProducts(ctx context.Context) ([]catalog.Product, error) {
	return readTable(ctx, s, repository.TableProducts, decodeProduct)
}

func (s *Store) ReadOrders(ctx context.Context) ([]order.Order, error) {
	return readTable(ctx, s, repository.TableOrders, decodeOrder)
}

func (s *Store) ReadOrderItems(ctx context.Context) ([]order.OrderItem, error) {
	return readTable(ctx, s, repository.TableOrderItems, decodeOrderItem)
}

func (s *Store) ReadReviews(ctx context.Context) ([]review.Review, error) {
	return readTable(ctx, s, repository.TableReviews, decodeReview)
}

// ReadAll reads the five record sets in dependency order.
func (s *Store) ReadAll(ctx context.Context) (*repository.Dataset, error) {
	var (
		ds  repository.Dataset
		err error
	)
	if ds.Customers, err = s.ReadCustomers(ctx); err != nil {
		return nil, err
	}
	if ds.Products, err = s.ReadProducts(ctx); err != nil {
		return nil, err
	}
	if ds.Orders, err = s.ReadOrders(ctx); err != nil {
		return nil, err
	}
	if ds.OrderItems, err = s.ReadOrderItems(ctx); err != nil {
		return nil, err
	}
	if ds.Reviews, err = s.ReadReviews(ctx); err != nil {
		return nil, err
	}
	return &ds, nil
}

func readTable[T any](ctx context.Context, s *Store, table string, decode func(*row) T) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.checkPending(); err != nil {
		return nil, err
	}

	name := s.path(table)
	f, err := os.Open(name)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingFile, name)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, name)
	}
	if err != nil {
		return nil, &ParseError{File: name, Line: 1, Err: err}
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}
	for _, col := range Columns(table) {
		if _, ok := index[col]; !ok {
			return nil, &ParseError{File: name, Line: 1, Column: col, Err: ErrMissingColumn}
		}
	}
	r.FieldsPerRecord = len(header)

	out := make([]T, 0)
	for line := 2; ; line++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{File: name, Line: line, Err: err}
		}
		rw := &row{file: name, line: line, index: index, record: record}
		v := decode(rw)
		if rw.err != nil {
			return nil, rw.err
		}
		out = append(out, v)
	}
	return out, nil
}

// WriteBase replaces customers.csv, products.csv and orders.csv together.
func (s *Store) WriteBase(ctx context.Context, customers []catalog.Customer, products []catalog.Product, orders []order.Order) error {
	return s.replace(ctx, []tableRows{
		{table: repository.TableCustomers, rows: encodeAll(customers, encodeCustomer)},
		{table: repository.TableProducts, rows: encodeAll(products, encodeProduct)},
		{table: repository.TableOrders, rows: encodeAll(orders, encodeOrder)},
	})
}

// WriteGenerated replaces orders.csv, order_items.csv and reviews.csv together.
func (s *Store) WriteGenerated(ctx context.Context, orders []order.Order, items []order.OrderItem, reviews []review.Review) error {
	return s.replace(ctx, []tableRows{
		{table: repository.TableOrders, rows: encodeAll(orders, encodeOrder)},
		{table: repository.TableOrderItems, rows: encodeAll(items, encodeOrderItem)},
		{table: repository.TableReviews, rows: encodeAll(reviews, encodeReview)},
	})
}

type tableRows struct {
	table string
	rows  [][]string
}

func encodeAll[T any](in []T, encode func(T) []string) [][]string {
	out := make([][]string, len(in))
	for i, v := range in {
		out[i] = encode(v)
	}
	return out
}

// replace stages every table in a temporary file next to its target and only
// renames them into place once all of them were written and synced. A pending
// marker brackets the renames so readers can detect a replace that stopped
// halfway.
func (s *Store) replace(ctx context.Context, tables []tableRows) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	staged := make([]string, 0, len(tables))
	cleanup := func() {
		for _, name := range staged {
			_ = os.Remove(name)
		}
	}

	for _, t := range tables {
		if err := ctx.Err(); err != nil {
			cleanup()
			return err
		}
		name, err := s.stage(t)
		if err != nil {
			cleanup()
			return err
		}
		staged = append(staged, name)
	}

	if err := s.markPending(tables); err != nil {
		cleanup()
		return err
	}

	for i, t := range tables {
		if err := os.Rename(staged[i], s.path(t.table)); err != nil {
			cleanup()
			if i == 0 {
				_ = os.Remove(s.markerPath())
			}
			return fmt.Errorf("replace %s: %w", t.table, err)
		}
	}

	if err := os.Remove(s.markerPath()); err != nil {
		return fmt.Errorf("clear pending marker: %w", err)
	}
	return nil
}

func (s *Store) markerPath() string {
	return filepath.Join(s.dir, pendingMarker)
}

// markPending records the tables about to be renamed. It is synced before the
// first rename.
func (s *Store) markPending(tables []tableRows) error {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.table
	}

	f, err := os.Create(s.markerPath())
	if err != nil {
		return fmt.Errorf("write pending marker: %w", err)
	}
	_, werr := f.WriteString(strings.Join(names, "\n") + "\n")
	if werr == nil {
		werr = f.Sync()
	}
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		_ = os.Remove(f.Name())
		return fmt.Errorf("write pending marker: %w", werr)
	}
	return nil
}

func (s *Store) checkPending() error {
	data, err := os.ReadFile(s.markerPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read pending marker: %w", err)
	}
	tables := strings.Fields(string(data))
	return fmt.Errorf("%w (%s in %s)", ErrIncompleteReplace, strings.Join(tables, ", "), s.dir)
}

func (s *Store) stage(t tableRows) (string, error) {
	f, err := os.CreateTemp(s.dir, "."+t.table+"-*.csv.tmp")
	if err != nil {
		return "", fmt.Errorf("stage %s: %w", t.table, err)
	}
	name := f.Name()

	w := csv.NewWriter(f)
	_ = w.Write(Columns(t.table))
	_ = w.WriteAll(t.rows)
	werr := w.Error()
	if werr == nil {
		werr = f.Sync()
	}
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("write %s: %w", t.table, werr)
	}
	return name, nil
}
