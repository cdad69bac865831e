package main

import (
	"context"
	"errors"
	"fmt"

	"shopdata/internal/application/ingest"
	"shopdata/internal/application/report"
	"shopdata/internal/config"
	"shopdata/internal/domain/repository"
	"shopdata/internal/infrastructure/persistence/csvstore"
	"shopdata/internal/infrastructure/persistence/postgres"
	"shopdata/internal/infrastructure/persistence/sqlite"
)

var errReportsNeedSQLite = errors.New("reports run against the sqlite store only")

// relational is the opened load target.
type relational struct {
	store interface {
		repository.Loader
		repository.Verifier
	}
	// querier is nil for postgres
	querier report.Querier
	close   func()
}

func (a *app) openRelational(ctx context.Context) (*relational, error) {
	switch a.cfg.Store.Target {
	case config.StoreSQLite:
		db, err := sqlite.Open(a.cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		s := sqlite.NewStore(db, a.log)
		return &relational{store: s, querier: s, close: func() { _ = s.Close() }}, nil
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, a.cfg.DB)
		if err != nil {
			return nil, err
		}
		return &relational{store: postgres.NewStore(pool, a.log), close: pool.Close}, nil
	default:
		return nil, fmt.Errorf("unknown store target %q", a.cfg.Store.Target)
	}
}

func (a *app) csv() *csvstore.Store {
	return csvstore.NewStore(a.cfg.Data.Dir)
}

func (a *app) ingestService(r *relational) *ingest.Service {
	return ingest.NewService(a.csv(), r.store, r.store, a.log)
}

func (a *app) reportService(r *relational) (*report.Service, error) {
	if r.querier == nil {
		return nil, errReportsNeedSQLite
	}
	return report.NewService(r.querier, a.cfg.Report.AsOf, a.log), nil
}
