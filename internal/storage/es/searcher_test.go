package es

import (
	"errors"
	"testing"

	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sortedIndex pages through docs ordered by id, using the id as sort value.
func sortedIndex(ids ...int64) (pageFetcher, *[][]types.FieldValue) {
	var calls [][]types.FieldValue
	fetch := func(batch int) pageFetcher {
		return func(after []types.FieldValue) ([]FaqDocument, []types.FieldValue, error) {
			calls = append(calls, after)
			start := 0
			if len(after) > 0 {
				for start < len(ids) && ids[start] <= after[0].(int64) {
					start++
				}
			}
			end := min(start+batch, len(ids))
			var docs []FaqDocument
			for _, id := range ids[start:end] {
				docs = append(docs, FaqDocument{ID: id})
			}
			var last []types.FieldValue
			if len(docs) > 0 {
				last = []types.FieldValue{docs[len(docs)-1].ID}
			}
			return docs, last, nil
		}
	}
	return fetch(2), &calls
}

func TestCollectPages_WalksPastFirstPage(t *testing.T) {
	fetch, calls := sortedIndex(1, 2, 3, 4, 5)

	docs, err := collectPages(2, fetch)

	require.NoError(t, err)
	ids := make([]int64, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids)
	require.Len(t, *calls, 3)
	assert.Nil(t, (*calls)[0])
	assert.Equal(t, []types.FieldValue{int64(2)}, (*calls)[1])
	assert.Equal(t, []types.FieldValue{int64(4)}, (*calls)[2])
}

func TestCollectPages_ExactMultipleEndsOnEmptyPage(t *testing.T) {
	fetch, calls := sortedIndex(1, 2, 3, 4)

	docs, err := collectPages(2, fetch)

	require.NoError(t, err)
	assert.Len(t, docs, 4)
	assert.Len(t, *calls, 3)
}

func TestCollectPages_Error(t *testing.T) {
	boom := errors.New("cluster down")
	calls := 0
	_, err := collectPages(2, func(after []types.FieldValue) ([]FaqDocument, []types.FieldValue, error) {
		calls++
		if calls == 2 {
			return nil, nil, boom
		}
		return []FaqDocument{{ID: 1}, {ID: 2}}, []types.FieldValue{int64(2)}, nil
	})

	assert.ErrorIs(t, err, boom)
}
