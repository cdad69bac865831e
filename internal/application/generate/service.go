package generate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"shopdata/internal/domain/repository"
	"shopdata/pkg/logger"
)

var (
	ErrNoCustomers     = errors.New("no customers to generate from")
	ErrNoProducts      = errors.New("no products to generate from")
	ErrNoOrders        = errors.New("no orders to generate from")
	ErrUnknownCustomer = errors.New("order references an unknown customer")
)

type Summary struct {
	Orders  int `json:"orders"`
	Items   int `json:"order_items"`
	Reviews int `json:"reviews"`
}

type Service struct {
	reader repository.DatasetReader
	writer repository.GeneratedWriter
	opts   Options
	seed   int64
	log    logger.Logger
}

// NewService wires a generation pass. seed 0 draws a random seed per run.
func NewService(reader repository.DatasetReader, writer repository.GeneratedWriter, opts Options, seed int64, log logger.Logger) *Service {
	return &Service{
		reader: reader,
		writer: writer,
		opts:   opts,
		seed:   seed,
		log:    log,
	}
}

// Generate reads the base record sets, derives items, totals and reviews and
// writes them back. Nothing is written unless every step succeeded.
func (s *Service) Generate(ctx context.Context) (*Summary, error) {
	log := s.log.WithContext(ctx)
	start := time.Now()

	customers, err := s.reader.ReadCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("read customers: %w", err)
	}
	if len(customers) == 0 {
		return nil, ErrNoCustomers
	}
	products, err := s.reader.ReadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}
	if len(products) == 0 {
		return nil, ErrNoProducts
	}
	orders, err := s.reader.ReadOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}
	if len(orders) == 0 {
		return nil, ErrNoOrders
	}

	known := make(map[int]struct{}, len(customers))
	for _, c := range customers {
		known[c.ID] = struct{}{}
	}
	for _, o := range orders {
		if _, ok := known[o.CustomerID]; !ok {
			return nil, fmt.Errorf("%w: order %d, customer %d", ErrUnknownCustomer, o.ID, o.CustomerID)
		}
	}

	log.Info("generating order data",
		logger.Int("customers", len(customers)),
		logger.Int("products", len(products)),
		logger.Int("orders", len(orders)),
		logger.Int64("seed", s.seed),
	)

	gen := NewGenerator(gofakeit.New(s.seed), s.opts)
	res, err := gen.Run(orders, products)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	if err := s.writer.WriteGenerated(ctx, res.Orders, res.Items, res.Reviews); err != nil {
		return nil, fmt.Errorf("write generated data: %w", err)
	}

	sum := &Summary{Orders: len(res.Orders), Items: len(res.Items), Reviews: len(res.Reviews)}
	log.Info("order data generated",
		logger.Int("order_items", sum.Items),
		logger.Int("reviews", sum.Reviews),
		logger.Duration("took", time.Since(start)),
	)
	return sum, nil
}
