package meditation

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type ContentFormat string

const (
	FormatHTML     ContentFormat = "html"
	FormatMarkdown ContentFormat = "markdown"
)

// RichText turns authored content into markup that is safe to inline.
// Markdown is converted first; the result always goes through the sanitiser.
type RichText struct {
	format ContentFormat
	policy *bluemonday.Policy
	md     goldmark.Markdown
}

func NewRichText(format ContentFormat) (*RichText, error) {
	if format == "" {
		format = FormatHTML
	}
	if format != FormatHTML && format != FormatMarkdown {
		return nil, fmt.Errorf("unknown content format %q", format)
	}

	policy := bluemonday.UGCPolicy()
	policy.AllowStyling()

	return &RichText{
		format: format,
		policy: policy,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(
				html.WithHardWraps(),
				// raw HTML is kept here and stripped by the policy.
				html.WithUnsafe(),
			),
		),
	}, nil
}

func (r *RichText) Format() ContentFormat {
	return r.format
}

// Render never fails: content that does not convert is sanitised as HTML.
func (r *RichText) Render(s string) template.HTML {
	if s == "" {
		return ""
	}
	src := []byte(s)
	if r.format == FormatMarkdown {
		var buf bytes.Buffer
		if err := r.md.Convert(src, &buf); err == nil {
			src = buf.Bytes()
		}
	}
	return template.HTML(string(r.policy.SanitizeBytes(src)))
}
