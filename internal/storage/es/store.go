package es

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/faq-hunter/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
)

// Store is the elasticsearch backend. Faqs live in the configured index,
// categories in a sibling index with the "_categories" suffix.
type Store struct {
	*Searcher
	*Reader
	*Storer
	client *elasticsearch.TypedClient
}

func NewStore(ctx context.Context, config ClientConfig) (*Store, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	searcher := newSearcher(client, config)
	s := &Store{
		Searcher: searcher,
		Reader:   newReader(client, searcher, config),
		Storer:   newStorer(client, config),
		client:   client,
	}

	if err := s.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}
	return s, nil
}

// Healthy reports whether the cluster answers a ping.
func (s *Store) Healthy(ctx context.Context) bool {
	ok, err := s.client.Ping().Do(ctx)
	return err == nil && ok
}

func (s *Store) Close() {}

var _ storage.Backend = (*Store)(nil)
