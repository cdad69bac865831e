package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopdata/pkg/logger"
)

var ErrUnknownReport = errors.New("unknown report")

const (
	CustomerPurchase    = "customer-purchase"
	ProductPerformance  = "product-performance"
	CategoryPerformance = "category-performance"
)

type Definition struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	query string
}

var definitions = []Definition{
	{Name: CustomerPurchase, Title: "Customer Purchase Analysis Report (Top 20)", query: customerPurchaseSQL},
	{Name: ProductPerformance, Title: "Product Performance Report (Top 15)", query: productPerformanceSQL},
	{Name: CategoryPerformance, Title: "Category Performance Analysis", query: categoryPerformanceSQL},
}

// Table is one executed report. Row values are the driver's native types.
type Table struct {
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Records returns the rows keyed by column name.
func (t *Table) Records() []map[string]any {
	out := make([]map[string]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]any, len(t.Columns))
		for i, col := range t.Columns {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		out = append(out, rec)
	}
	return out
}

type Querier interface {
	Query(ctx context.Context, query string, args ...any) ([]string, [][]any, error)
}

type Service struct {
	querier Querier
	asOf    time.Time
	log     logger.Logger
}

func NewService(querier Querier, asOf time.Time, log logger.Logger) *Service {
	return &Service{
		querier: querier,
		asOf:    asOf,
		log:     log,
	}
}

func (s *Service) List() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

func (s *Service) Run(ctx context.Context, name string) (*Table, error) {
	for _, d := range definitions {
		if d.Name == name {
			return s.run(ctx, d)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownReport, name)
}

// RunAll executes every report in declaration order and stops at the first failure.
func (s *Service) RunAll(ctx context.Context) ([]*Table, error) {
	tables := make([]*Table, 0, len(definitions))
	for _, d := range definitions {
		t, err := s.run(ctx, d)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func (s *Service) run(ctx context.Context, d Definition) (*Table, error) {
	start := time.Now()
	columns, rows, err := s.querier.Query(ctx, d.query, s.asOf.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("run report %s: %w", d.Name, err)
	}
	s.log.Debug("report executed",
		logger.String("report", d.Name),
		logger.Int("rows", len(rows)),
		logger.Duration("took", time.Since(start)),
	)
	return &Table{
		Name:    d.Name,
		Title:   d.Title,
		Columns: columns,
		Rows:    rows,
	}, nil
}
