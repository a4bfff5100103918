package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
)

type Storer struct {
	client        *elasticsearch.TypedClient
	indexName     string
	categoryIndex string
	indexBuilder  *IndexBuilder
}

func newStorer(client *elasticsearch.TypedClient, config ClientConfig) *Storer {
	return &Storer{
		client:        client,
		indexName:     config.IndexName,
		categoryIndex: config.categoryIndex(),
		indexBuilder:  NewIndexBuilder(),
	}
}

func (e *Storer) Save(ctx context.Context, faq domain.Faq) (int64, error) {
	if faq.ID == 0 {
		id, err := e.nextID(ctx)
		if err != nil {
			return 0, err
		}
		faq.ID = id
	}
	normalize(&faq, time.Now())
	doc := toDocument(faq)

	res, err := e.client.Index(e.indexName).
		Id(documentID(doc.ID, doc.Language)).
		Document(doc).
		Refresh(refresh.Waitfor).
		Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to index faq %d: %w", faq.ID, err)
	}

	slog.Debug("Faq indexed", "id", doc.ID, "lang", doc.Language, "index", e.indexName, "result", res.Result)
	return faq.ID, nil
}

// SaveBulk indexes faqs through the bulk API. Faqs without an id get ids
// above the current maximum.
func (e *Storer) SaveBulk(ctx context.Context, faqs []domain.Faq) error {
	if len(faqs) == 0 {
		return nil
	}

	next, err := e.nextID(ctx)
	if err != nil {
		return err
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         e.indexName,
		Client:        e.client,
		NumWorkers:    4,
		FlushBytes:    5e+6,
		FlushInterval: 30 * time.Second,
		Refresh:       "wait_for",
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var successful, failed atomic.Int64
	now := time.Now()

	for _, f := range faqs {
		if f.ID == 0 {
			f.ID = next
			next++
		}
		normalize(&f, now)
		doc := toDocument(f)

		docBytes, err := json.Marshal(doc)
		if err != nil {
			slog.Error("Failed to marshal faq document", "error", err, "id", doc.ID)
			failed.Add(1)
			continue
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: documentID(doc.ID, doc.Language),
			Body:       bytes.NewReader(docBytes),
			OnSuccess: func(context.Context, esutil.BulkIndexerItem, esutil.BulkIndexerResponseItem) {
				successful.Add(1)
			},
			OnFailure: func(_ context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					slog.Error("Bulk index error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("Bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			failed.Add(1)
			slog.Error("Failed to add faq to bulk indexer", "error", err, "id", doc.ID)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	slog.Info("Bulk indexing completed",
		"successful", successful.Load(),
		"failed", failed.Load(),
		"total", len(faqs),
		"index", e.indexName)

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("failed to index %d out of %d faqs", n, len(faqs))
	}
	return nil
}

func (e *Storer) SaveCategories(ctx context.Context, categories []domain.Category) error {
	for _, c := range categories {
		lang := c.Language
		if lang == "" {
			lang = domain.FaqDefaultLanguage
		}
		doc := CategoryDocument{ID: int64(c.ID), ParentID: int64(c.ParentID), Language: lang, Name: c.Name}

		_, err := e.client.Index(e.categoryIndex).
			Id(strconv.FormatInt(doc.ID, 10)).
			Document(doc).
			Refresh(refresh.Waitfor).
			Do(ctx)
		if err != nil {
			return fmt.Errorf("failed to index category %d: %w", c.ID, err)
		}
	}
	return nil
}

func (e *Storer) nextID(ctx context.Context) (int64, error) {
	desc := sortorder.Desc
	res, err := e.client.Search().
		Index(e.indexName).
		Size(1).
		Sort(&types.SortOptions{SortOptions: map[string]types.FieldSort{"id": {Order: &desc}}}).
		Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to find highest faq id: %w", err)
	}
	if len(res.Hits.Hits) == 0 {
		return 1, nil
	}
	var doc FaqDocument
	if err := json.Unmarshal(res.Hits.Hits[0].Source_, &doc); err != nil {
		return 0, fmt.Errorf("failed to unmarshal faq document: %w", err)
	}
	return doc.ID + 1, nil
}

func (e *Storer) EnsureIndex(ctx context.Context) error {
	if err := e.ensure(ctx, e.indexName, e.indexBuilder.buildFaqMapping()); err != nil {
		return err
	}
	return e.ensure(ctx, e.categoryIndex, e.indexBuilder.buildCategoryMapping())
}

func (e *Storer) ensure(ctx context.Context, index string, mappings types.TypeMapping) error {
	exists, err := e.client.Indices.Exists(index).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index %s exists: %w", index, err)
	}
	if exists {
		slog.Info("Index already exists", "index", index)
		return nil
	}

	createRes, err := e.client.Indices.Create(index).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index %s: %w", index, err)
	}
	if !createRes.Acknowledged {
		return fmt.Errorf("creation of index %s was not acknowledged", index)
	}

	slog.Info("Index created successfully", "index", index)
	return nil
}

func normalize(f *domain.Faq, now time.Time) {
	if f.Language == "" {
		f.Language = domain.FaqDefaultLanguage
	}
	if f.UpdatedAt.IsZero() {
		f.UpdatedAt = now
	}
}
