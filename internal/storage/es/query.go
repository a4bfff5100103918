package es

import (
	"strings"

	"github.com/DjordjeVuckovic/faq-hunter/internal/storage"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
)

// candidateBatch is the page size of one search_after round trip. It stays
// below the default index.max_result_window.
const candidateBatch = 1_000

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)

func termQuery(field string, value types.FieldValue) types.Query {
	return types.Query{Term: map[string]types.TermQuery{field: {Value: value}}}
}

func solutionIDQuery(id int64) types.Query {
	return termQuery("solution_id", id)
}

// anyTokenQuery matches documents where at least one token occurs,
// ignoring case, inside any of the match fields.
func anyTokenQuery(tokens []string) types.Query {
	caseInsensitive := true
	should := make([]types.Query, 0, len(tokens)*len(matchFields))
	for _, t := range tokens {
		pattern := "*" + wildcardEscaper.Replace(t) + "*"
		for _, f := range matchFields {
			should = append(should, types.Query{
				Wildcard: map[string]types.WildcardQuery{
					f: {Value: &pattern, CaseInsensitive: &caseInsensitive},
				},
			})
		}
	}
	return types.Query{Bool: &types.BoolQuery{Should: should}}
}

// candidateQuery restricts match to active documents in scope. The category
// filter only narrows documents; rows are cut per category afterwards.
func candidateQuery(match types.Query, scope storage.Scope) *types.Query {
	filters := []types.Query{
		termQuery("active", true),
		match,
	}
	if scope.HasLanguage() {
		filters = append(filters, termQuery("lang", scope.Language))
	}
	if scope.HasCategory() {
		filters = append(filters, termQuery("categories", int64(scope.Category)))
	}
	return &types.Query{Bool: &types.BoolQuery{Filter: filters}}
}

func candidateSort() []types.SortCombinations {
	asc := sortorder.Asc
	return []types.SortCombinations{
		&types.SortOptions{SortOptions: map[string]types.FieldSort{"id": {Order: &asc}}},
		&types.SortOptions{SortOptions: map[string]types.FieldSort{"lang": {Order: &asc}}},
	}
}
