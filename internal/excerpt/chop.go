package excerpt

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ChopWords keeps the first n whitespace-delimited words of s, joined by single
// spaces. It never cuts inside a word and reports whether words were dropped.
func ChopWords(s string, n int) (string, bool) {
	words := strings.Fields(s)
	if n < 0 {
		n = 0
	}
	if len(words) <= n {
		return strings.Join(words, " "), false
	}
	return strings.Join(words[:n], " "), true
}

// StripTags returns the visible text of an HTML fragment, unescaped. Tags are
// replaced by a space so adjacent blocks do not glue words together; script
// and style bodies are dropped.
func StripTags(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	skip := false

	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				return html.UnescapeString(fragment)
			}
			return b.String()
		case html.TextToken:
			if !skip {
				b.Write(z.Text())
			}
		case html.StartTagToken:
			if isRawTextTag(z) {
				skip = true
			}
			b.WriteByte(' ')
		case html.EndTagToken:
			if isRawTextTag(z) {
				skip = false
			}
			b.WriteByte(' ')
		case html.SelfClosingTagToken:
			b.WriteByte(' ')
		}
	}
}

func isRawTextTag(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	a := atom.Lookup(name)
	return a == atom.Script || a == atom.Style
}
