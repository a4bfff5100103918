package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
)

// ErrUnavailable reports that the backing store could not answer. It is never
// used for "zero rows".
var ErrUnavailable = errors.New("storage unavailable")

// Unavailable wraps a driver error so callers can match it with errors.Is.
func Unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}

// Scope narrows candidate retrieval to a category and a language.
type Scope struct {
	Category     domain.CategoryID
	Language     string
	AllLanguages bool
}

// HasCategory is false for the wildcard and any non-positive id.
func (s Scope) HasCategory() bool {
	return s.Category > 0
}

func (s Scope) HasLanguage() bool {
	return !s.AllLanguages && s.Language != ""
}

// CandidateStore retrieves active records only. Rows come back in a stable
// retrieval order which the engine never re-sorts.
type CandidateStore interface {
	// FindExactByID returns the records whose solution id equals id.
	FindExactByID(ctx context.Context, id int64, scope Scope) ([]domain.Record, error)
	// FindByTokens returns the records where any token is a case-insensitive
	// substring of the title, content or keywords.
	FindByTokens(ctx context.Context, tokens []string, scope Scope) ([]domain.Record, error)
}
