package render

import (
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/faq-hunter/internal/excerpt"
	"github.com/DjordjeVuckovic/faq-hunter/internal/search"
	"github.com/DjordjeVuckovic/faq-hunter/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vpnItem() excerpt.Excerpt {
	return excerpt.Excerpt{
		CategoryPath: "Network > VPN",
		Title:        `<span class="highlight">VPN</span> drops`,
		Content:      "Network outage",
		Truncated:    true,
		URL:          "index.php?action=artikel&cat=2&id=10&artlang=en&highlight=vpn",
		Tooltip:      "VPN drops",
	}
}

func TestRenderer_Listing(t *testing.T) {
	page := &search.ResultPage{
		Query:   "vpn",
		Items:   []excerpt.Excerpt{vpnItem()},
		Window:  pagination.NewWindow(3, 2, 1),
		NextURL: "index.php?action=search&search=vpn&seite=2&searchcategory=%25",
	}

	out, err := NewRenderer(EnglishMessages()).RenderString(page)

	require.NoError(t, err)
	assert.Contains(t, out, "<p>3 search results</p>")
	assert.Contains(t, out, "<p><strong>Page 1 of 2</strong></p>")
	assert.Contains(t, out, `<li><strong>Network &gt; VPN</strong>: <a title="VPN drops" href="index.php?action=artikel&amp;cat=2&amp;id=10&amp;artlang=en&amp;highlight=vpn"><span class="highlight">VPN</span> drops</a>`)
	assert.Contains(t, out, `<div class="searchpreview"><strong>Answer:</strong> Network outage...</div>`)
	assert.Contains(t, out, `[ <a title="next page" href="index.php?action=search&amp;search=vpn&amp;seite=2&amp;searchcategory=%25">next page</a> ]`)
	assert.NotContains(t, out, "previous page")
}

func TestRenderer_SecondPageHasPreviousLink(t *testing.T) {
	page := &search.ResultPage{
		Items:       []excerpt.Excerpt{vpnItem()},
		Window:      pagination.NewWindow(3, 2, 2),
		PreviousURL: "index.php?action=search&search=vpn&seite=1&searchcategory=%25",
	}

	out, err := NewRenderer(EnglishMessages()).RenderString(page)

	require.NoError(t, err)
	assert.Contains(t, out, `[ <a href="index.php?action=search&amp;search=vpn&amp;seite=1&amp;searchcategory=%25">previous page</a> ]`)
	assert.NotContains(t, out, "next page")
	assert.Contains(t, out, "Page 2 of 2")
}

func TestRenderer_Empty(t *testing.T) {
	out, err := NewRenderer(EnglishMessages()).RenderString(&search.ResultPage{Query: "nothing"})

	require.NoError(t, err)
	assert.Equal(t, "<p>No matching articles.</p>", strings.TrimSpace(out))
}

func TestRenderer_Instant(t *testing.T) {
	item := vpnItem()
	item.Truncated = false
	page := &search.ResultPage{
		Items:   []excerpt.Excerpt{item},
		Window:  pagination.NewWindow(3, 2, 1),
		Instant: true,
	}

	out, err := NewRenderer(EnglishMessages()).RenderString(page)

	require.NoError(t, err)
	assert.Contains(t, out, "<p>3 search results. Only the first 2 records are shown.</p>")
	assert.NotContains(t, out, "Page 1 of 2")
	assert.NotContains(t, out, `class="pager"`)
	assert.Contains(t, out, "<strong>Answer:</strong> Network outage</div>")
}

func TestRenderer_Summary(t *testing.T) {
	r := NewRenderer(EnglishMessages())

	assert.Equal(t, "1 search result", r.Summary(&search.ResultPage{Window: pagination.NewWindow(1, 10, 1)}))
	assert.Equal(t, "12 search results", r.Summary(&search.ResultPage{Window: pagination.NewWindow(12, 10, 1)}))
}

func TestAnchor(t *testing.T) {
	got := Anchor("index.php?a=1&b=2", "<b>x</b>", `say "hi"`)

	assert.Equal(t, `<a title="say &#34;hi&#34;" href="index.php?a=1&amp;b=2"><b>x</b></a>`, string(got))
}
