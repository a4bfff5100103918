package pg

import (
	"github.com/DjordjeVuckovic/faq-hunter/internal/storage"
)

// Store is the postgres backend: searcher, reader and storer sharing one
// pool.
type Store struct {
	*Searcher
	*Reader
	*Storer
	pool *ConnectionPool
}

func NewStore(pool *ConnectionPool) *Store {
	return &Store{
		Searcher: NewSearcher(pool),
		Reader:   NewReader(pool),
		Storer:   NewStorer(pool),
		pool:     pool,
	}
}

func (s *Store) Close() {
	s.pool.Close()
}

var _ storage.Backend = (*Store)(nil)
