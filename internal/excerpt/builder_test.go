package excerpt

import (
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
	"github.com/DjordjeVuckovic/faq-hunter/internal/token"
	"github.com/stretchr/testify/assert"
)

func TestBuilder_Build(t *testing.T) {
	record := domain.Record{
		ID:         7,
		Language:   "en",
		CategoryID: 3,
		Title:      "How do I fix a network outage <fast>?",
		Content:    `<p>When the <a href="/network">network</a> is down, restart the router.</p>`,
	}
	b := NewBuilder(Config{SystemURI: "https://faq.example.com/"}, token.Parse("network outage"), ModeListing)

	e := b.Build(record, "Network > VPN")

	assert.Equal(t, `How do I fix a <span class="highlight">network</span> <span class="highlight">outage</span> &lt;fast&gt;?`, e.Title)
	assert.Equal(t, `When the <span class="highlight">network</span> is down, restart the router.`, e.Content)
	assert.False(t, e.Truncated)
	assert.Equal(t, "Network > VPN", e.CategoryPath)
	assert.Equal(t, record.Title, e.Tooltip)
	assert.Equal(t, "index.php?action=artikel&cat=3&id=7&artlang=en&highlight=network+outage", e.URL)
}

func TestBuilder_Build_Truncates(t *testing.T) {
	long := strings.Repeat("alpha beta ", 20)
	record := domain.Record{ID: 1, Language: "en", CategoryID: 1, Title: long, Content: long}
	b := NewBuilder(Config{}, token.Parse("zz"), ModeListing)

	e := b.Build(record, "")

	assert.Len(t, strings.Fields(e.Title), DefaultTitleWords)
	assert.Len(t, strings.Fields(e.Content), DefaultContentWords)
	assert.True(t, e.Truncated)
}

func TestBuilder_Build_InstantURLIsAbsolute(t *testing.T) {
	record := domain.Record{ID: 9, Language: "de", CategoryID: 2, Title: "t", Content: "c"}
	b := NewBuilder(Config{SystemURI: "https://faq.example.com/"}, token.Parse(`a&b "x"`), ModeInstant)

	e := b.Build(record, "")

	assert.Equal(t,
		"https://faq.example.com/index.php?action=artikel&cat=2&id=9&artlang=de&highlight=a%26amp%3Bb+%26%2334%3Bx%26%2334%3B",
		e.URL)
}
