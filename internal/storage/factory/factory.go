package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/faq-hunter/internal/storage"
	"github.com/DjordjeVuckovic/faq-hunter/internal/storage/es"
	"github.com/DjordjeVuckovic/faq-hunter/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/faq-hunter/internal/storage/pg"
	"github.com/DjordjeVuckovic/faq-hunter/pkg/server"
)

// NewBackend opens the configured store and a health checker for it.
func NewBackend(ctx context.Context, cfg *StorageConfig) (storage.Backend, server.HealthChecker, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		return pg.NewStore(pool), pg.NewHealthChecker(pool), nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		store, err := es.NewStore(ctx, *cfg.Es)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil

	case storage.InMem:
		return in_mem.NewStore(), server.NewOkHealthChecker(), nil

	default:
		return nil, nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
