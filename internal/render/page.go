package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/DjordjeVuckovic/faq-hunter/internal/search"
)

const pageTemplate = `
{{- if .Empty -}}
<p>{{.Msgs.NoArticles}}</p>
{{- else -}}
<p>{{.Summary}}</p>
{{if .Counter}}<p><strong>{{.Counter}}</strong></p>
{{end -}}
<ul class="faq-results">
{{range .Page.Items -}}
<li><strong>{{.CategoryPath}}</strong>: {{anchor .URL .Title .Tooltip}}<br /><div class="searchpreview"><strong>{{$.Msgs.SearchContent}}</strong> {{trusted .Content}}{{if .Truncated}}{{$.Msgs.TruncationMark}}{{end}}</div><br /></li>
{{end -}}
</ul>
{{- if .ShowPager}}
<p class="pager"><strong>
{{- if .Page.PreviousURL}}[ {{anchor .Page.PreviousURL .PreviousText ""}} ]{{end}} {{if .Page.NextURL}}[ {{anchor .Page.NextURL .NextText .Msgs.Next}} ]{{end -}}
</strong></p>
{{- end}}
{{- end}}
`

// Renderer writes result pages as HTML fragments.
type Renderer struct {
	msgs Messages
	tmpl *template.Template
}

func NewRenderer(msgs Messages) *Renderer {
	funcs := template.FuncMap{
		"anchor": func(href, text, tooltip string) template.HTML {
			return Anchor(href, template.HTML(text), tooltip)
		},
		// Excerpt titles and contents are escaped and highlighted already.
		"trusted": func(s string) template.HTML {
			return template.HTML(s)
		},
	}

	return &Renderer{
		msgs: msgs,
		tmpl: template.Must(template.New("page").Funcs(funcs).Parse(pageTemplate)),
	}
}

type pageView struct {
	Page         *search.ResultPage
	Msgs         Messages
	Empty        bool
	Summary      string
	Counter      string
	ShowPager    bool
	// PreviousText and NextText are escaped link labels.
	PreviousText string
	NextText     string
}

func (r *Renderer) view(page *search.ResultPage) pageView {
	v := pageView{
		Page:         page,
		Msgs:         r.msgs,
		Empty:        page.Empty(),
		Summary:      r.Summary(page),
		PreviousText: template.HTMLEscapeString(r.msgs.Previous),
		NextText:     template.HTMLEscapeString(r.msgs.Next),
	}
	w := page.Window
	if !page.Instant && w.TotalPages > 1 {
		v.Counter = fmt.Sprintf(r.msgs.PageCounter, w.Page, w.TotalPages)
	}
	v.ShowPager = !page.Instant && w.Total > w.Size
	return v
}

// Summary is the count line, e.g. "3 search results". In instant mode it
// notes that only the first page is shown.
func (r *Renderer) Summary(page *search.ResultPage) string {
	w := page.Window
	if w.Total == 1 {
		return fmt.Sprintf(r.msgs.ResultOne, w.Total)
	}
	s := fmt.Sprintf(r.msgs.ResultMany, w.Total)
	if page.Instant && w.TotalPages > 1 {
		s += fmt.Sprintf(r.msgs.InstantLimit, w.Size)
	}
	return s
}

func (r *Renderer) Render(w io.Writer, page *search.ResultPage) error {
	if err := r.tmpl.Execute(w, r.view(page)); err != nil {
		return fmt.Errorf("failed to render result page: %w", err)
	}
	return nil
}

func (r *Renderer) RenderString(page *search.ResultPage) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, page); err != nil {
		return "", err
	}
	return buf.String(), nil
}
