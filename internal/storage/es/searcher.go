package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
	"github.com/DjordjeVuckovic/faq-hunter/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

type Searcher struct {
	client    *elasticsearch.TypedClient
	indexName string
	batchSize int
}

func newSearcher(client *elasticsearch.TypedClient, config ClientConfig) *Searcher {
	return &Searcher{
		client:    client,
		indexName: config.IndexName,
		batchSize: candidateBatch,
	}
}

func (s *Searcher) FindExactByID(ctx context.Context, id int64, scope storage.Scope) ([]domain.Record, error) {
	return s.find(ctx, "exact id lookup", candidateQuery(solutionIDQuery(id), scope), scope)
}

func (s *Searcher) FindByTokens(ctx context.Context, tokens []string, scope storage.Scope) ([]domain.Record, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	return s.find(ctx, "keyword lookup", candidateQuery(anyTokenQuery(tokens), scope), scope)
}

func (s *Searcher) find(ctx context.Context, op string, query *types.Query, scope storage.Scope) ([]domain.Record, error) {
	docs, err := collectPages(s.batchSize, func(after []types.FieldValue) ([]FaqDocument, []types.FieldValue, error) {
		return s.searchPage(ctx, query, s.batchSize, after)
	})
	if err != nil {
		return nil, storage.Unavailable(op, err)
	}

	var records []domain.Record
	for _, d := range docs {
		records = append(records, d.records(scope.Category)...)
	}

	slog.Debug("Es candidates fetched", "op", op, "documents", len(docs), "records", len(records))
	return records, nil
}

type pageFetcher func(after []types.FieldValue) ([]FaqDocument, []types.FieldValue, error)

// collectPages walks every page of a sorted search with search_after until a
// short page signals the end, so no candidate is lost to a result window.
func collectPages(batchSize int, fetch pageFetcher) ([]FaqDocument, error) {
	var (
		all   []FaqDocument
		after []types.FieldValue
	)
	for {
		docs, last, err := fetch(after)
		if err != nil {
			return nil, err
		}
		all = append(all, docs...)
		if len(docs) < batchSize || len(last) == 0 {
			return all, nil
		}
		after = last
	}
}

// searchPage returns one sorted page and the sort values of its last hit.
func (s *Searcher) searchPage(ctx context.Context, query *types.Query, size int, after []types.FieldValue) ([]FaqDocument, []types.FieldValue, error) {
	req := s.client.Search().
		Index(s.indexName).
		Query(query).
		Size(size).
		Sort(candidateSort()...)
	if len(after) > 0 {
		req = req.SearchAfter(after...)
	}

	res, err := req.Do(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to execute search: %w", err)
	}

	docs := make([]FaqDocument, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc FaqDocument
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		docs = append(docs, doc)
	}

	var last []types.FieldValue
	if n := len(res.Hits.Hits); n > 0 {
		last = res.Hits.Hits[n-1].Sort
	}
	return docs, last, nil
}

// first returns any language version of a faq; permissions are shared
// between versions.
func (s *Searcher) first(ctx context.Context, recordID int64) (*FaqDocument, error) {
	query := &types.Query{Bool: &types.BoolQuery{Filter: []types.Query{termQuery("id", recordID)}}}
	docs, _, err := s.searchPage(ctx, query, 1, nil)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return &docs[0], nil
}
