package es

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
	"github.com/DjordjeVuckovic/faq-hunter/internal/storage"
	pkgtesting "github.com/DjordjeVuckovic/faq-hunter/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping elasticsearch integration test in short mode")
	}
	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)

	store, err := NewStore(ctx, ClientConfig{
		Addresses: []string{container.Address},
		IndexName: "faqs_test",
	})
	require.NoError(t, err)
	assert.True(t, store.Healthy(ctx))

	require.NoError(t, store.SaveCategories(ctx, []domain.Category{
		{ID: 1, Name: "Network"},
		{ID: 2, ParentID: 1, Name: "VPN"},
	}))
	require.NoError(t, store.SaveBulk(ctx, []domain.Faq{
		{ID: 10, Language: "en", SolutionID: 1000, Title: "VPN drops", Content: "Network outage", Active: true, Categories: []domain.CategoryID{2}, Groups: []domain.GroupID{4}},
		{ID: 11, Language: "en", SolutionID: 1001, Title: "Draft outage", Active: false, Categories: []domain.CategoryID{1}},
		{ID: 12, Language: "en", SolutionID: 1002, Title: "Shared answer", Content: "OUTAGE report", Active: true, Categories: []domain.CategoryID{1, 2}},
	}))

	t.Run("keyword lookup is case insensitive and skips inactive", func(t *testing.T) {
		got, err := store.FindByTokens(ctx, []string{"outage"}, storage.Scope{Language: "en"})
		require.NoError(t, err)
		ids := make([]int64, len(got))
		for i, r := range got {
			ids[i] = r.ID
		}
		assert.Equal(t, []int64{10, 12, 12}, ids)
	})

	t.Run("keyword lookup pages with search_after", func(t *testing.T) {
		store.Searcher.batchSize = 1
		defer func() { store.Searcher.batchSize = candidateBatch }()

		got, err := store.FindByTokens(ctx, []string{"outage"}, storage.Scope{Language: "en"})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("exact lookup honours category", func(t *testing.T) {
		got, err := store.FindExactByID(ctx, 1002, storage.Scope{Language: "en", Category: 2})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, domain.CategoryID(2), got[0].CategoryID)
	})

	t.Run("permissions and paths", func(t *testing.T) {
		groups, err := store.GroupsFor(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, []domain.GroupID{4}, groups)

		path, err := store.PathFor(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Network > VPN", path)
	})

	t.Run("save allocates the next id", func(t *testing.T) {
		id, err := store.Save(ctx, domain.Faq{SolutionID: 1003, Title: "New", Active: true, Categories: []domain.CategoryID{1}})
		require.NoError(t, err)
		assert.Equal(t, int64(13), id)
	})
}
