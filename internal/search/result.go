package search

import (
	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
	"github.com/DjordjeVuckovic/faq-hunter/internal/excerpt"
	"github.com/DjordjeVuckovic/faq-hunter/pkg/pagination"
)

// Request carries everything one search invocation depends on. Nothing is
// read from process-wide state.
type Request struct {
	Query string
	Page  int
	// PageSize overrides the configured page size when positive.
	PageSize     int
	Category     domain.CategoryID
	Language     string
	AllLanguages bool
	Actor        domain.Actor
	Instant      bool
}

// Outcome holds either a redirect or a result page, never both.
type Outcome struct {
	Redirect *Redirect   `json:"redirect,omitempty"`
	Page     *ResultPage `json:"page,omitempty"`
}

type Redirect struct {
	SolutionID int64  `json:"solution_id"`
	URL        string `json:"url"`
}

// ResultPage lists the accepted records of one page in retrieval order.
type ResultPage struct {
	Query        string            `json:"query"`
	EscapedQuery string            `json:"-"`
	Kind         Kind              `json:"strategy"`
	Items        []excerpt.Excerpt `json:"items"`
	Window       pagination.Window `json:"window"`
	PreviousURL  string            `json:"previous_url,omitempty"`
	NextURL      string            `json:"next_url,omitempty"`
	Instant      bool              `json:"instant"`
}

func (p *ResultPage) Empty() bool {
	return p.Window.Total == 0
}
