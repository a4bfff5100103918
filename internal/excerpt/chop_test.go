package excerpt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChopWords(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		n         int
		want      string
		truncated bool
	}{
		{name: "shorter than budget", in: "one two three", n: 5, want: "one two three"},
		{name: "exact budget", in: "one two three", n: 3, want: "one two three"},
		{name: "cut", in: "one two three four", n: 2, want: "one two", truncated: true},
		{name: "runs of whitespace collapse", in: " one\t\ttwo \n three ", n: 2, want: "one two", truncated: true},
		{name: "zero budget", in: "one", n: 0, want: "", truncated: true},
		{name: "empty", in: "", n: 3, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := ChopWords(tt.in, tt.n)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.truncated, truncated)
		})
	}
}

func TestChopWords_FortyWordsToTwentyFive(t *testing.T) {
	words := make([]string, 40)
	for i := range words {
		words[i] = "word" + strings.Repeat("x", i%4)
	}

	got, truncated := ChopWords(strings.Join(words, " "), DefaultContentWords)

	assert.True(t, truncated)
	fields := strings.Fields(got)
	assert.Len(t, fields, 25)
	assert.Equal(t, words[:25], fields)
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "no tags here", want: "no tags here"},
		{name: "paragraphs", in: "<p>first</p><p>second</p>", want: "first second"},
		{name: "entities are decoded", in: "<b>R&amp;D</b> &lt;team&gt;", want: "R&D <team>"},
		{name: "attributes disappear", in: `<a href="https://cat.example" title="cat">link</a>`, want: "link"},
		{name: "script dropped", in: "before<script>var cat = 1;</script>after", want: "before after"},
		{name: "line break", in: "one<br/>two", want: "one two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, strings.Join(strings.Fields(StripTags(tt.in)), " "))
		})
	}
}
