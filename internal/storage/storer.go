package storage

import (
	"context"

	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
)

// Storer persists faqs together with their categories and permissions.
type Storer interface {
	Save(ctx context.Context, faq domain.Faq) (int64, error)
	SaveBulk(ctx context.Context, faqs []domain.Faq) error
	SaveCategories(ctx context.Context, categories []domain.Category) error
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
