package pg

import (
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/faq-hunter/internal/storage"
)

const candidateSelect = `SELECT fd.id, fd.lang, fcr.category_id, fd.solution_id, fd.title, fd.content, fd.keywords
FROM faqdata fd
JOIN faqcategoryrelations fcr ON fcr.record_id = fd.id AND fcr.record_lang = fd.lang
WHERE fd.active = TRUE`

const candidateOrder = `
ORDER BY fd.id, fd.lang, fcr.category_id`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a token into an ILIKE pattern matching it as a
// literal substring.
func containsPattern(token string) string {
	return "%" + likeEscaper.Replace(token) + "%"
}

type queryBuilder struct {
	sb   strings.Builder
	args []any
}

func newCandidateQuery() *queryBuilder {
	b := &queryBuilder{}
	b.sb.WriteString(candidateSelect)
	return b
}

func (b *queryBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func (b *queryBuilder) solutionID(id int64) *queryBuilder {
	b.sb.WriteString("\n  AND fd.solution_id = ")
	b.sb.WriteString(b.arg(id))
	return b
}

func (b *queryBuilder) anyToken(tokens []string) *queryBuilder {
	b.sb.WriteString("\n  AND (")
	for i, t := range tokens {
		if i > 0 {
			b.sb.WriteString(" OR ")
		}
		p := b.arg(containsPattern(t))
		b.sb.WriteString("fd.title ILIKE " + p + " OR fd.content ILIKE " + p + " OR fd.keywords ILIKE " + p)
	}
	b.sb.WriteString(")")
	return b
}

func (b *queryBuilder) scope(s storage.Scope) *queryBuilder {
	if s.HasLanguage() {
		b.sb.WriteString("\n  AND fd.lang = ")
		b.sb.WriteString(b.arg(s.Language))
	}
	if s.HasCategory() {
		b.sb.WriteString("\n  AND fcr.category_id = ")
		b.sb.WriteString(b.arg(int64(s.Category)))
	}
	return b
}

func (b *queryBuilder) build() (string, []any) {
	b.sb.WriteString(candidateOrder)
	return b.sb.String(), b.args
}
