package es

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
	"github.com/DjordjeVuckovic/faq-hunter/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
)

const categoryPathSeparator = " > "

// Reader serves permissions from the faq documents and category paths from
// the category index.
type Reader struct {
	searcher      *Searcher
	client        *elasticsearch.TypedClient
	categoryIndex string
}

func newReader(client *elasticsearch.TypedClient, searcher *Searcher, config ClientConfig) *Reader {
	return &Reader{
		searcher:      searcher,
		client:        client,
		categoryIndex: config.categoryIndex(),
	}
}

func (r *Reader) GroupsFor(ctx context.Context, recordID int64) ([]domain.GroupID, error) {
	doc, err := r.searcher.first(ctx, recordID)
	if err != nil {
		return nil, storage.Unavailable("groups", err)
	}
	if doc == nil {
		return nil, nil
	}
	groups := make([]domain.GroupID, len(doc.Groups))
	for i, g := range doc.Groups {
		groups[i] = domain.GroupID(g)
	}
	return groups, nil
}

func (r *Reader) UsersFor(ctx context.Context, recordID int64) ([]domain.UserID, error) {
	doc, err := r.searcher.first(ctx, recordID)
	if err != nil {
		return nil, storage.Unavailable("users", err)
	}
	if doc == nil {
		return nil, nil
	}
	users := make([]domain.UserID, len(doc.Users))
	for i, u := range doc.Users {
		users[i] = domain.UserID(u)
	}
	return users, nil
}

func (r *Reader) PathFor(ctx context.Context, id domain.CategoryID) (string, error) {
	var names []string
	seen := make(map[domain.CategoryID]bool)
	for cur := id; cur > 0 && !seen[cur]; {
		seen[cur] = true
		c, err := r.category(ctx, cur)
		if err != nil {
			return "", storage.Unavailable("category path", err)
		}
		if c == nil {
			break
		}
		names = append(names, c.Name)
		cur = domain.CategoryID(c.ParentID)
	}
	slices.Reverse(names)
	return strings.Join(names, categoryPathSeparator), nil
}

func (r *Reader) category(ctx context.Context, id domain.CategoryID) (*CategoryDocument, error) {
	res, err := r.client.Get(r.categoryIndex, strconv.FormatInt(int64(id), 10)).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	if !res.Found {
		return nil, nil
	}
	var c CategoryDocument
	if err := json.Unmarshal(res.Source_, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal category %d: %w", id, err)
	}
	return &c, nil
}
