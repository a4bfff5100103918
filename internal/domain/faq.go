package domain

import "time"

type CategoryID int64

// AnyCategory is the category wildcard: no category restriction.
const AnyCategory CategoryID = -1

const FaqDefaultLanguage = "en"

// Faq is a single record as it lives in storage, with its category
// associations and permission lists.
type Faq struct {
	ID         int64        `json:"id" yaml:"id"`
	Language   string       `json:"lang" yaml:"lang"`
	SolutionID int64        `json:"solution_id" yaml:"solution_id"`
	Title      string       `json:"title" yaml:"title"`
	Content    string       `json:"content" yaml:"content"`
	Keywords   string       `json:"keywords,omitempty" yaml:"keywords"`
	Active     bool         `json:"active" yaml:"active"`
	Categories []CategoryID `json:"categories" yaml:"categories"`
	Users      []UserID     `json:"users,omitempty" yaml:"users"`
	Groups     []GroupID    `json:"groups,omitempty" yaml:"groups"`
	UpdatedAt  time.Time    `json:"updated_at,omitempty" yaml:"updated_at"`
}

// Record is a search candidate: one row per (faq, category) association.
// It is a read-only snapshot taken for a single search invocation.
type Record struct {
	ID         int64      `json:"id"`
	Language   string     `json:"lang"`
	CategoryID CategoryID `json:"category_id"`
	SolutionID int64      `json:"solution_id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Keywords   string     `json:"keywords,omitempty"`
}

// Records expands a faq into its candidate rows, one per category.
func (f Faq) Records() []Record {
	records := make([]Record, 0, len(f.Categories))
	for _, c := range f.Categories {
		records = append(records, Record{
			ID:         f.ID,
			Language:   f.Language,
			CategoryID: c,
			SolutionID: f.SolutionID,
			Title:      f.Title,
			Content:    f.Content,
			Keywords:   f.Keywords,
		})
	}
	return records
}

type Category struct {
	ID       CategoryID `json:"id" yaml:"id"`
	ParentID CategoryID `json:"parent_id" yaml:"parent_id"`
	Language string     `json:"lang" yaml:"lang"`
	Name     string     `json:"name" yaml:"name"`
}
