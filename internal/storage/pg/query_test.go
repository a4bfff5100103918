package pg

import (
	"testing"

	"github.com/DjordjeVuckovic/faq-hunter/internal/storage"
	"github.com/stretchr/testify/assert"
)

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%vpn%", containsPattern("vpn"))
	assert.Equal(t, `%100\%\_done\\%`, containsPattern(`100%_done\`))
}

func TestQueryBuilder_Exact(t *testing.T) {
	sql, args := newCandidateQuery().solutionID(1042).scope(storage.Scope{Category: 3, Language: "en"}).build()

	assert.Contains(t, sql, "fd.active = TRUE")
	assert.Contains(t, sql, "AND fd.solution_id = $1")
	assert.Contains(t, sql, "AND fd.lang = $2")
	assert.Contains(t, sql, "AND fcr.category_id = $3")
	assert.Contains(t, sql, "ORDER BY fd.id, fd.lang, fcr.category_id")
	assert.Equal(t, []any{int64(1042), "en", int64(3)}, args)
}

func TestQueryBuilder_TokensWithoutScope(t *testing.T) {
	sql, args := newCandidateQuery().anyToken([]string{"network", "outage"}).scope(storage.Scope{Category: -1, AllLanguages: true, Language: "en"}).build()

	assert.Contains(t, sql, "fd.title ILIKE $1 OR fd.content ILIKE $1 OR fd.keywords ILIKE $1 OR fd.title ILIKE $2")
	assert.NotContains(t, sql, "fd.lang =")
	assert.NotContains(t, sql, "fcr.category_id =")
	assert.Equal(t, []any{"%network%", "%outage%"}, args)
}
