package collector

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
	"github.com/DjordjeVuckovic/faq-hunter/internal/reader"
)

// FixtureCollector streams the faqs of a loaded fixture, filling in
// defaults the fixture may omit.
type FixtureCollector struct {
	Fixture *reader.Fixture
	now     func() time.Time
}

func NewFixtureCollector(f *reader.Fixture) *FixtureCollector {
	return &FixtureCollector{
		Fixture: f,
		now:     time.Now,
	}
}

func (fc *FixtureCollector) Categories() []domain.Category {
	categories := make([]domain.Category, len(fc.Fixture.Categories))
	for i, c := range fc.Fixture.Categories {
		if c.Language == "" {
			c.Language = domain.FaqDefaultLanguage
		}
		categories[i] = c
	}
	return categories
}

func (fc *FixtureCollector) Collect(ctx context.Context) (<-chan Result[domain.Faq], error) {
	if fc.Fixture == nil {
		return nil, fmt.Errorf("no fixture loaded")
	}

	out := make(chan Result[domain.Faq])
	go func() {
		defer close(out)

		for i, faq := range fc.Fixture.Faqs {
			res := Result[domain.Faq]{Result: fc.complete(faq)}
			if strings.TrimSpace(faq.Title) == "" {
				res = Result[domain.Faq]{Err: fmt.Errorf("faq %d: empty title", i)}
			}

			select {
			case <-ctx.Done():
				return
			case out <- res:
			}
		}
		slog.Info("Fixture collection finished", "fixture", fc.Fixture.Metadata.Name, "faqs", len(fc.Fixture.Faqs))
	}()

	return out, nil
}

func (fc *FixtureCollector) complete(faq domain.Faq) domain.Faq {
	if faq.Language == "" {
		faq.Language = domain.FaqDefaultLanguage
	}
	if faq.UpdatedAt.IsZero() {
		faq.UpdatedAt = fc.now().UTC()
	}
	return faq
}
