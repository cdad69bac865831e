package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopdata/internal/domain/repository"
	"shopdata/pkg/logger"
)

var (
	ErrEmptyTable   = errors.New("record set is empty")
	ErrNotGenerated = errors.New("order items are missing; run generate first")
)

// DatasetSource reads every record set at once.
type DatasetSource interface {
	ReadAll(ctx context.Context) (*repository.Dataset, error)
}

type Service struct {
	source   DatasetSource
	loader   repository.Loader
	verifier repository.Verifier
	log      logger.Logger
}

func NewService(source DatasetSource, loader repository.Loader, verifier repository.Verifier, log logger.Logger) *Service {
	return &Service{source: source, loader: loader, verifier: verifier, log: log}
}

// Ingest imports the CSV dataset into the relational store and verifies it.
func (s *Service) Ingest(ctx context.Context) (*repository.Verification, error) {
	log := s.log.WithContext(ctx)
	start := time.Now()

	ds, err := s.source.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if err := checkDataset(ds); err != nil {
		return nil, err
	}

	if err := s.loader.Load(ctx, ds); err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	log.Info("dataset loaded", logger.Duration("took", time.Since(start)))

	return s.Verify(ctx)
}

// Verify inspects the store and logs a warning when integrity checks fail.
func (s *Service) Verify(ctx context.Context) (*repository.Verification, error) {
	v, err := s.verifier.Verify(ctx)
	if err != nil {
		return nil, fmt.Errorf("verify dataset: %w", err)
	}

	log := s.log.WithContext(ctx)
	if !v.OK() {
		log.Warn("integrity checks failed",
			logger.Int64("orphans", v.Orphans.Total()),
			logger.Int64("unreconciled_orders", v.UnreconciledOrders),
		)
	} else {
		log.Info("integrity checks passed")
	}
	return v, nil
}

func checkDataset(ds *repository.Dataset) error {
	counts := []struct {
		table string
		n     int
	}{
		{repository.TableCustomers, len(ds.Customers)},
		{repository.TableProducts, len(ds.Products)},
		{repository.TableOrders, len(ds.Orders)},
	}
	for _, c := range counts {
		if c.n == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyTable, c.table)
		}
	}
	if len(ds.OrderItems) == 0 {
		return ErrNotGenerated
	}
	return nil
}
