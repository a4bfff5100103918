package es

import (
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// FaqDocument is one language version of a faq as stored in the index.
type FaqDocument struct {
	ID         int64     `json:"id"`
	Language   string    `json:"lang"`
	SolutionID int64     `json:"solution_id"`
	Active     bool      `json:"active"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Keywords   string    `json:"keywords"`
	Categories []int64   `json:"categories"`
	Users      []int64   `json:"users"`
	Groups     []int64   `json:"groups"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CategoryDocument struct {
	ID       int64  `json:"id"`
	ParentID int64  `json:"parent_id"`
	Language string `json:"lang"`
	Name     string `json:"name"`
}

func documentID(id int64, lang string) string {
	return fmt.Sprintf("%d_%s", id, lang)
}

func toDocument(f domain.Faq) FaqDocument {
	doc := FaqDocument{
		ID:         f.ID,
		Language:   f.Language,
		SolutionID: f.SolutionID,
		Active:     f.Active,
		Title:      f.Title,
		Content:    f.Content,
		Keywords:   f.Keywords,
		Categories: make([]int64, len(f.Categories)),
		Users:      make([]int64, len(f.Users)),
		Groups:     make([]int64, len(f.Groups)),
		UpdatedAt:  f.UpdatedAt,
	}
	for i, c := range f.Categories {
		doc.Categories[i] = int64(c)
	}
	for i, u := range f.Users {
		doc.Users[i] = int64(u)
	}
	for i, g := range f.Groups {
		doc.Groups[i] = int64(g)
	}
	return doc
}

// records expands a document into one record per category, keeping only the
// category in scope when there is one.
func (d FaqDocument) records(category domain.CategoryID) []domain.Record {
	records := make([]domain.Record, 0, len(d.Categories))
	for _, c := range d.Categories {
		if category > 0 && domain.CategoryID(c) != category {
			continue
		}
		records = append(records, domain.Record{
			ID:         d.ID,
			Language:   d.Language,
			CategoryID: domain.CategoryID(c),
			SolutionID: d.SolutionID,
			Title:      d.Title,
			Content:    d.Content,
			Keywords:   d.Keywords,
		})
	}
	return records
}

// matchFields are wildcard subfields; they keep the whole value so a token
// can match anywhere inside it, including across word boundaries.
var matchFields = []string{"title.wild", "content.wild", "keywords.wild"}

type IndexBuilder struct{}

func NewIndexBuilder() *IndexBuilder {
	return &IndexBuilder{}
}

func (b *IndexBuilder) buildFaqMapping() types.TypeMapping {
	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":          types.NewLongNumberProperty(),
			"lang":        types.NewKeywordProperty(),
			"solution_id": types.NewLongNumberProperty(),
			"active":      types.NewBooleanProperty(),
			"title":       b.textWithWildcard(),
			"content":     b.textWithWildcard(),
			"keywords":    b.textWithWildcard(),
			"categories":  types.NewLongNumberProperty(),
			"users":       types.NewLongNumberProperty(),
			"groups":      types.NewLongNumberProperty(),
			"updated_at":  types.NewDateProperty(),
		},
	}
}

func (b *IndexBuilder) buildCategoryMapping() types.TypeMapping {
	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":        types.NewLongNumberProperty(),
			"parent_id": types.NewLongNumberProperty(),
			"lang":      types.NewKeywordProperty(),
			"name":      types.NewKeywordProperty(),
		},
	}
}

func (b *IndexBuilder) textWithWildcard() types.Property {
	textProp := types.NewTextProperty()
	textProp.Fields = map[string]types.Property{
		"wild": types.NewWildcardProperty(),
	}
	return textProp
}
