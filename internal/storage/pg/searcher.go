package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
	"github.com/DjordjeVuckovic/faq-hunter/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Searcher resolves candidates from the faqdata and faqcategoryrelations
// tables.
type Searcher struct {
	db *pgxpool.Pool
}

func NewSearcher(pool *ConnectionPool) *Searcher {
	return &Searcher{db: pool.conn}
}

func (s *Searcher) FindExactByID(ctx context.Context, id int64, scope storage.Scope) ([]domain.Record, error) {
	sql, args := newCandidateQuery().solutionID(id).scope(scope).build()
	return s.query(ctx, "exact id lookup", sql, args)
}

func (s *Searcher) FindByTokens(ctx context.Context, tokens []string, scope storage.Scope) ([]domain.Record, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	sql, args := newCandidateQuery().anyToken(tokens).scope(scope).build()
	return s.query(ctx, "keyword lookup", sql, args)
}

func (s *Searcher) query(ctx context.Context, op, sql string, args []any) ([]domain.Record, error) {
	slog.Debug("Executing pg candidate query", "op", op, "args", len(args))

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, storage.Unavailable(op, err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Record, error) {
		var r domain.Record
		err := row.Scan(&r.ID, &r.Language, &r.CategoryID, &r.SolutionID, &r.Title, &r.Content, &r.Keywords)
		return r, err
	})
	if err != nil {
		return nil, storage.Unavailable(op, fmt.Errorf("failed to read candidates: %w", err))
	}

	return records, nil
}
