package excerpt

import (
	"cmp"
	"html"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	xhtml "golang.org/x/net/html"
)

const (
	DefaultMarkOpen  = `<span class="highlight">`
	DefaultMarkClose = `</span>`
)

// Highlighter marks search terms in the text of an HTML fragment. The
// fragment is split into tag and text spans and only text spans are
// rewritten, so tag names, attribute names and attribute values never change.
type Highlighter struct {
	pattern   *regexp.Regexp
	markOpen  string
	markClose string
}

type HighlighterOption func(*Highlighter)

func WithMarker(open, close string) HighlighterOption {
	return func(h *Highlighter) {
		h.markOpen = open
		h.markClose = close
	}
}

// NewHighlighter compiles one case-insensitive pattern for all terms. A term
// that does not compile is left out, the others are still highlighted.
func NewHighlighter(terms []string, opts ...HighlighterOption) *Highlighter {
	h := &Highlighter{
		markOpen:  DefaultMarkOpen,
		markClose: DefaultMarkClose,
	}
	for _, opt := range opts {
		opt(h)
	}

	var alternatives []string
	for _, term := range terms {
		expr := regexp.QuoteMeta(term)
		// QuoteMeta keeps invalid UTF-8 bytes, which the compiler rejects.
		if _, err := regexp.Compile("(?i)" + expr); err != nil {
			slog.Debug("Skipping highlight term", "term", term, "error", err)
			continue
		}
		alternatives = append(alternatives, expr)
	}
	if len(alternatives) == 0 {
		return h
	}

	// longest first so "networks" wins over "network"
	slices.SortStableFunc(alternatives, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})
	pattern, err := regexp.Compile("(?i)(?:" + strings.Join(alternatives, "|") + ")")
	if err != nil {
		slog.Debug("Skipping highlighting", "error", err)
		return h
	}
	h.pattern = pattern
	return h
}

func (h *Highlighter) Enabled() bool {
	return h.pattern != nil
}

// Highlight returns fragment with every term occurrence in visible text
// wrapped in the marker. Malformed input comes back unchanged.
func (h *Highlighter) Highlight(fragment string) string {
	if h.pattern == nil || fragment == "" {
		return fragment
	}

	z := xhtml.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	b.Grow(len(fragment))
	rawText := false

	for {
		switch z.Next() {
		case xhtml.ErrorToken:
			if z.Err() != io.EOF {
				return fragment
			}
			return b.String()
		case xhtml.TextToken:
			raw := string(z.Raw())
			if rawText {
				b.WriteString(raw)
				continue
			}
			h.markText(&b, raw)
		case xhtml.StartTagToken:
			b.Write(z.Raw())
			rawText = isRawTextTag(z)
		case xhtml.EndTagToken:
			b.Write(z.Raw())
			rawText = false
		default:
			b.Write(z.Raw())
		}
	}
}

// markText rewrites one text span. Matching runs on the unescaped text so
// entities such as &amp; are never split; untouched spans keep their bytes.
func (h *Highlighter) markText(b *strings.Builder, raw string) {
	text := html.UnescapeString(raw)
	locs := h.pattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		b.WriteString(raw)
		return
	}

	last := 0
	for _, loc := range locs {
		b.WriteString(html.EscapeString(text[last:loc[0]]))
		b.WriteString(h.markOpen)
		b.WriteString(html.EscapeString(text[loc[0]:loc[1]]))
		b.WriteString(h.markClose)
		last = loc[1]
	}
	b.WriteString(html.EscapeString(text[last:]))
}
