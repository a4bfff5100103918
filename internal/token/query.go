package token

import (
	"html"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MinHighlightLength is the shortest term that gets highlighted; shorter
// terms still take part in matching.
const MinHighlightLength = 3

// patternMetachars are removed from a query before its terms are reused
// as highlighting patterns.
var patternMetachars = strings.NewReplacer(
	"^", "", ".", "", "?", "", "*", "", "+", "",
	"{", "", "}", "", "(", "", ")", "", "[", "", "]", "", `"`, "",
)

// Query is the normalized form of a raw search input.
type Query struct {
	Raw     string
	Trimmed string
	// Escaped is the entity-escaped query used in links back to the search.
	Escaped     string
	IsNumericID bool
	SolutionID  int64
	Tokens      []Token
}

func Parse(raw string) Query {
	return ParseWith(NewWhitespaceTokenizer(), raw)
}

func ParseWith(t Tokenizer, raw string) Query {
	trimmed := strings.TrimSpace(raw)
	q := Query{
		Raw:     raw,
		Trimmed: trimmed,
		Escaped: html.EscapeString(trimmed),
		Tokens:  t.Tokenize(trimmed),
	}

	if len(q.Tokens) == 1 && q.Tokens[0].Type == NUMBER {
		if id, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			q.IsNumericID = true
			q.SolutionID = id
		}
	}

	return q
}

func (q Query) Empty() bool {
	return len(q.Tokens) == 0
}

// Terms returns the token values used for matching.
func (q Query) Terms() []string {
	terms := make([]string, len(q.Tokens))
	for i, t := range q.Tokens {
		terms[i] = t.Value
	}
	return terms
}

// HighlightTerms returns the terms eligible for highlighting: pattern
// metacharacters stripped, longer than two characters, deduplicated
// case-insensitively in first-seen order.
func (q Query) HighlightTerms() []string {
	cleaned := patternMetachars.Replace(q.Trimmed)

	seen := make(map[string]struct{})
	var terms []string
	for _, f := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(f) < MinHighlightLength {
			continue
		}
		key := strings.ToLower(f)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		terms = append(terms, f)
	}
	return terms
}
