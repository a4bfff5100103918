package render

import (
	"html"
	"html/template"
	"strings"
)

// Anchor renders a link. text is trusted HTML; href and tooltip are escaped.
func Anchor(href string, text template.HTML, tooltip string) template.HTML {
	var b strings.Builder
	b.WriteString(`<a`)
	if tooltip != "" {
		b.WriteString(` title="`)
		b.WriteString(html.EscapeString(tooltip))
		b.WriteString(`"`)
	}
	b.WriteString(` href="`)
	b.WriteString(html.EscapeString(href))
	b.WriteString(`">`)
	b.WriteString(string(text))
	b.WriteString(`</a>`)
	return template.HTML(b.String())
}
