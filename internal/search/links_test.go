package search

import (
	"testing"

	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedirectURL(t *testing.T) {
	assert.Equal(t, "https://faq.example.com/index.php/solution_id_1042.html", RedirectURL("https://faq.example.com/", true, 1042))
	assert.Equal(t, "https://faq.example.com/index.php?solution_id=1042", RedirectURL("https://faq.example.com", false, 1042))
}

func TestPageURL(t *testing.T) {
	tests := []struct {
		name     string
		rewrite  bool
		query    string
		page     int
		allLangs bool
		category domain.CategoryID
		want     string
	}{
		{
			name:     "query string form",
			query:    "network outage",
			page:     2,
			category: domain.AnyCategory,
			want:     "index.php?action=search&search=network+outage&seite=2&searchcategory=%25",
		},
		{
			name:     "rewrite form with all languages and category",
			rewrite:  true,
			query:    "vpn",
			page:     3,
			allLangs: true,
			category: 7,
			want:     "search.html?search=vpn&seite=3&langs=all&searchcategory=7",
		},
		{
			name:     "markup characters are url encoded only",
			query:    `don't <b>"a&b"`,
			page:     1,
			category: 2,
			want:     "index.php?action=search&search=don%27t+%3Cb%3E%22a%26b%22&seite=1&searchcategory=2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageURL(tt.rewrite, tt.query, tt.page, tt.allLangs, tt.category))
		})
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.CategoryID
		wantErr bool
	}{
		{in: "", want: domain.AnyCategory},
		{in: "%", want: domain.AnyCategory},
		{in: "0", want: domain.AnyCategory},
		{in: " 12 ", want: 12},
		{in: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, FormatCategory(got)))
		})
	}
}

func mustParse(t *testing.T, s string) domain.CategoryID {
	t.Helper()
	c, err := ParseCategory(s)
	require.NoError(t, err)
	return c
}
