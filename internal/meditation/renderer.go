package meditation

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

const pageTitle = "오늘의 묵상"

// PageView is the whole document: list screen plus the detail overlay.
type PageView struct {
	Title          string
	Rows           []ListRow
	Continue       *ListRow
	ContinueHref   string
	Detail         *DetailView
	DetailHTML     template.HTML
	OverlayVisible bool
	ScrollLocked   bool
	CloseHref      string
}

// Renderer owns the parsed templates and the rich-text pipeline.
type Renderer struct {
	tmpl *template.Template
	rich *RichText
}

func NewRenderer(rich *RichText) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, rich: rich}, nil
}

// BuildDetail is BuildDetail with the renderer's rich-text pipeline.
func (r *Renderer) BuildDetail(e Entry) *DetailView {
	return BuildDetail(e, r.rich)
}

// RenderDetail produces the detail container's markup. The output depends
// only on v, so rendering the same view twice gives identical bytes.
func (r *Renderer) RenderDetail(v *DetailView) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "detail", v); err != nil {
		return "", fmt.Errorf("rendering detail for day %d: %w", v.Day, err)
	}
	return template.HTML(buf.String()), nil
}

func (r *Renderer) RenderPage(w io.Writer, page PageView) error {
	if page.Title == "" {
		page.Title = pageTitle
	}
	if err := r.tmpl.ExecuteTemplate(w, "page", page); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}
