package contentpack

import (
	"bytes"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// markdownRenderer turns model text fragments into HTML fragments. Models
// pepper blog bodies and captions with inline markdown (bold, links, the
// odd code span), so fragments go through a real AST render instead of
// being escaped wholesale. Raw HTML is sanitized by goldmark since
// WithUnsafe is not enabled.
type markdownRenderer struct {
	md goldmark.Markdown
}

// newMarkdownRenderer creates a markdownRenderer with GFM extensions and
// class-based syntax highlighting.
func newMarkdownRenderer() *markdownRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &markdownRenderer{md: md}
}

// Fragment renders markdown text to an HTML fragment. A single paragraph
// input is unwrapped from its <p> element so callers control the enclosing
// block. Render failures fall back to escaped text; content is never lost
// over a markdown quirk.
func (r *markdownRenderer) Fragment(text string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return AutoLink(text)
	}
	out := strings.TrimSpace(buf.String())

	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") &&
		strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out
}

// Compile-time check that the renderer satisfies the builder contract.
var _ fragmentRenderer = (*markdownRenderer)(nil)

// fragmentRenderer abstracts fragment rendering for the document builder.
type fragmentRenderer interface {
	Fragment(text string) string
}

// plainFragments escapes and autolinks without markdown handling. Used in
// tests and as a guard when markdown rendering is disabled.
type plainFragments struct{}

func (plainFragments) Fragment(text string) string { return AutoLink(text) }

var _ fragmentRenderer = plainFragments{}
