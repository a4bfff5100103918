package search

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
)

const categoryWildcard = "%"

// RedirectURL is the canonical article address of a solution id.
func RedirectURL(systemURI string, rewriteRules bool, solutionID int64) string {
	base := strings.TrimRight(systemURI, "/")
	if rewriteRules {
		return fmt.Sprintf("%s/index.php/solution_id_%d.html", base, solutionID)
	}
	return fmt.Sprintf("%s/index.php?solution_id=%d", base, solutionID)
}

// PageURL links to another page of the same search, keeping the query,
// the language scope and the category scope. The query is the raw trimmed
// text; the link is read back as a search parameter, so only URL encoding
// applies here.
func PageURL(rewriteRules bool, query string, page int, allLanguages bool, category domain.CategoryID) string {
	var b strings.Builder
	if rewriteRules {
		b.WriteString("search.html?")
	} else {
		b.WriteString("index.php?action=search&")
	}
	b.WriteString("search=")
	b.WriteString(url.QueryEscape(query))
	b.WriteString("&seite=")
	b.WriteString(strconv.Itoa(page))
	if allLanguages {
		b.WriteString("&langs=all")
	}
	b.WriteString("&searchcategory=")
	b.WriteString(url.QueryEscape(FormatCategory(category)))
	return b.String()
}

// FormatCategory renders a category scope the way ParseCategory reads it.
func FormatCategory(c domain.CategoryID) string {
	if c <= 0 {
		return categoryWildcard
	}
	return strconv.FormatInt(int64(c), 10)
}

// ParseCategory reads a category scope; empty and "%" mean any category.
func ParseCategory(s string) (domain.CategoryID, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == categoryWildcard {
		return domain.AnyCategory, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid category %q: %w", s, err)
	}
	if id <= 0 {
		return domain.AnyCategory, nil
	}
	return domain.CategoryID(id), nil
}
