package excerpt

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
	"github.com/DjordjeVuckovic/faq-hunter/internal/token"
)

const (
	DefaultTitleWords   = 15
	DefaultContentWords = 25
)

// Mode selects between the full listing and the lightweight instant
// response rendered inside another page.
type Mode int

const (
	ModeListing Mode = iota
	ModeInstant
)

type Config struct {
	TitleWords   int
	ContentWords int
	// SystemURI is the absolute base of the installation, e.g. https://faq.example.com
	SystemURI string
}

func (c Config) withDefaults() Config {
	if c.TitleWords <= 0 {
		c.TitleWords = DefaultTitleWords
	}
	if c.ContentWords <= 0 {
		c.ContentWords = DefaultContentWords
	}
	c.SystemURI = strings.TrimRight(c.SystemURI, "/")
	return c
}

// Excerpt is a display-ready search hit. Title and Content are HTML.
type Excerpt struct {
	Record       domain.Record `json:"record"`
	CategoryPath string        `json:"category_path"`
	Title        string        `json:"title"`
	Content      string        `json:"content"`
	Truncated    bool          `json:"truncated"`
	URL          string        `json:"url"`
	// Tooltip is the full, unescaped record title.
	Tooltip string `json:"tooltip"`
}

// Builder turns accepted records into excerpts for one query.
type Builder struct {
	cfg         Config
	query       token.Query
	mode        Mode
	highlighter *Highlighter
}

func NewBuilder(cfg Config, q token.Query, mode Mode) *Builder {
	return &Builder{
		cfg:         cfg.withDefaults(),
		query:       q,
		mode:        mode,
		highlighter: NewHighlighter(q.HighlightTerms()),
	}
}

func (b *Builder) Build(r domain.Record, categoryPath string) Excerpt {
	title, _ := ChopWords(r.Title, b.cfg.TitleWords)
	content, truncated := ChopWords(StripTags(r.Content), b.cfg.ContentWords)

	return Excerpt{
		Record:       r,
		CategoryPath: categoryPath,
		Title:        b.highlighter.Highlight(html.EscapeString(title)),
		Content:      b.highlighter.Highlight(html.EscapeString(content)),
		Truncated:    truncated,
		URL:          b.articleURL(r),
		Tooltip:      r.Title,
	}
}

func (b *Builder) articleURL(r domain.Record) string {
	params := fmt.Sprintf("action=artikel&cat=%d&id=%d&artlang=%s&highlight=%s",
		r.CategoryID,
		r.ID,
		url.QueryEscape(r.Language),
		url.QueryEscape(b.query.Escaped))

	return b.base() + "?" + params
}

func (b *Builder) base() string {
	if b.mode == ModeInstant {
		return b.cfg.SystemURI + "/index.php"
	}
	return "index.php"
}
