package search

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
	"github.com/DjordjeVuckovic/faq-hunter/internal/storage"
	"github.com/DjordjeVuckovic/faq-hunter/internal/token"
)

// Kind names the strategy that produced a candidate set.
type Kind string

const (
	KindExactID         Kind = "exact_id"
	KindExactIDFallback Kind = "exact_id_fallback"
	KindKeyword         Kind = "keyword"
	KindNone            Kind = "none"
)

// Resolution is the ordered candidate set of one search invocation.
type Resolution struct {
	Kind    Kind
	Records []domain.Record
}

// Strategy retrieves candidates for a parsed query.
type Strategy interface {
	Resolve(ctx context.Context, store storage.CandidateStore, q token.Query, scope storage.Scope) (*Resolution, error)
}

// SelectStrategy picks the strategy up front: exact id for purely numeric
// queries, keyword otherwise.
func SelectStrategy(q token.Query) Strategy {
	if q.IsNumericID {
		return ExactIDStrategy{}
	}
	return KeywordStrategy{}
}

// ExactIDStrategy looks records up by solution id. When that yields zero
// rows, and only then, it degrades to a keyword search on the same input.
type ExactIDStrategy struct{}

func (ExactIDStrategy) Resolve(ctx context.Context, store storage.CandidateStore, q token.Query, scope storage.Scope) (*Resolution, error) {
	records, err := store.FindExactByID(ctx, q.SolutionID, scope)
	if err != nil {
		return nil, fmt.Errorf("exact id lookup of %d: %w", q.SolutionID, err)
	}
	if len(records) > 0 {
		return &Resolution{Kind: KindExactID, Records: records}, nil
	}

	fallback, err := KeywordStrategy{}.Resolve(ctx, store, q, scope)
	if err != nil {
		return nil, err
	}
	fallback.Kind = KindExactIDFallback
	return fallback, nil
}

// KeywordStrategy ORs the query tokens across title, content and keywords.
type KeywordStrategy struct{}

func (KeywordStrategy) Resolve(ctx context.Context, store storage.CandidateStore, q token.Query, scope storage.Scope) (*Resolution, error) {
	records, err := store.FindByTokens(ctx, q.Terms(), scope)
	if err != nil {
		return nil, fmt.Errorf("keyword lookup: %w", err)
	}
	return &Resolution{Kind: KindKeyword, Records: records}, nil
}
