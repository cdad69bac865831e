package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"

	"shopdata/internal/domain/repository"
	"shopdata/pkg/logger"
)

var (
	errNoCustomers = errors.New("orders need at least one customer")
	ErrInvalidSize = errors.New("seed sizes must be positive")
)

type Summary struct {
	Customers int `json:"customers"`
	Products  int `json:"products"`
	Orders    int `json:"orders"`
}

type Service struct {
	writer repository.BaseWriter
	sizes  Sizes
	seed   int64
	log    logger.Logger
}

func NewService(writer repository.BaseWriter, sizes Sizes, seed int64, log logger.Logger) *Service {
	return &Service{
		writer: writer,
		sizes:  sizes,
		seed:   seed,
		log:    log,
	}
}

// Seed writes fresh customers, products and orders, replacing existing ones.
func (s *Service) Seed(ctx context.Context) (*Summary, error) {
	if s.sizes.Customers <= 0 || s.sizes.Products <= 0 || s.sizes.Orders <= 0 {
		return nil, ErrInvalidSize
	}

	base, err := NewSeeder(gofakeit.New(s.seed)).Build(s.sizes)
	if err != nil {
		return nil, err
	}
	if err := s.writer.WriteBase(ctx, base.Customers, base.Products, base.Orders); err != nil {
		return nil, fmt.Errorf("write base records: %w", err)
	}

	sum := &Summary{
		Customers: len(base.Customers),
		Products:  len(base.Products),
		Orders:    len(base.Orders),
	}
	s.log.WithContext(ctx).Info("base records seeded",
		logger.Int("customers", sum.Customers),
		logger.Int("products", sum.Products),
		logger.Int("orders", sum.Orders),
	)
	return sum, nil
}
