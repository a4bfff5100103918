package processor

import (
	"context"
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/faq-hunter/internal/collector"
	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
	"github.com/DjordjeVuckovic/faq-hunter/internal/storage"
	"github.com/DjordjeVuckovic/faq-hunter/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceCollector struct {
	results []collector.Result[domain.Faq]
}

func (s sliceCollector) Collect(_ context.Context) (<-chan collector.Result[domain.Faq], error) {
	ch := make(chan collector.Result[domain.Faq], len(s.results))
	for _, r := range s.results {
		ch <- r
	}
	close(ch)
	return ch, nil
}

func faqs(n int) sliceCollector {
	var c sliceCollector
	for i := 1; i <= n; i++ {
		c.results = append(c.results, collector.Result[domain.Faq]{Result: domain.Faq{
			ID:         int64(i),
			Language:   "en",
			SolutionID: int64(1000 + i),
			Title:      "printer setup",
			Content:    "plug it in",
			Active:     true,
			Categories: []domain.CategoryID{1},
		}})
	}
	return c
}

type countingStorer struct {
	storage.Storer
	bulkCalls []int
	failBulk  bool
}

func (c *countingStorer) SaveBulk(ctx context.Context, batch []domain.Faq) error {
	c.bulkCalls = append(c.bulkCalls, len(batch))
	if c.failBulk {
		return errors.New("bulk failed")
	}
	return c.Storer.SaveBulk(ctx, batch)
}

func TestFaqPipeline_Run_Basic(t *testing.T) {
	store := in_mem.NewStore()
	c := faqs(3)
	c.results = append(c.results, collector.Result[domain.Faq]{Err: errors.New("broken row")})

	p := NewPipeline(c, store, WithCategories([]domain.Category{{ID: 1, Language: "en", Name: "Hardware"}}))
	stats, err := p.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Processed)
	assert.Equal(t, 1, stats.Errors)
	assert.NotEmpty(t, stats.RunID)

	rows, err := store.FindByTokens(context.Background(), []string{"printer"}, storage.Scope{Category: domain.AnyCategory})
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	path, err := store.PathFor(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Hardware", path)
}

func TestFaqPipeline_Run_Bulk(t *testing.T) {
	storer := &countingStorer{Storer: in_mem.NewStore()}

	stats, err := NewPipeline(faqs(5), storer, WithBulk(2)).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1}, storer.bulkCalls)
	assert.Equal(t, 5, stats.Processed)
	assert.Equal(t, 3, stats.Batches)
}

func TestFaqPipeline_Run_BulkFailureCountsErrors(t *testing.T) {
	storer := &countingStorer{Storer: in_mem.NewStore(), failBulk: true}

	stats, err := NewPipeline(faqs(3), storer, WithBulk(10)).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, stats.Processed)
	assert.Equal(t, 3, stats.Errors)
}

func TestFaqPipeline_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	blocking := blockingCollector{}
	_, err := NewPipeline(blocking, in_mem.NewStore()).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

type blockingCollector struct{}

func (blockingCollector) Collect(_ context.Context) (<-chan collector.Result[domain.Faq], error) {
	return make(chan collector.Result[domain.Faq]), nil
}
