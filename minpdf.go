package contentpack

import (
	"bytes"
	"fmt"
	"strings"
)

// Minimal engine page geometry (US Letter, points).
const (
	miniPageWidth  = 612
	miniPageHeight = 792
	miniMargin     = 54
	miniLeading    = 14
	miniWrapWidth  = 90
	miniBodyTop    = 720
	miniBodyBottom = 60
)

// miniLinesPerPage is derived from the body band and leading.
const miniLinesPerPage = (miniBodyTop - miniBodyBottom) / miniLeading

// renderMinimalPDF writes a plain but complete PDF using nothing beyond the
// standard library. This is the guaranteed tier: it cannot fail, so it
// performs no I/O and uses only the built-in Helvetica font. Layout is a
// header bar, wrapped text lines, and a footer with page numbers.
func renderMinimalPDF(rec ContentRecord, brand BrandConfig) []byte {
	lines := flattenRecord(rec)
	pages := paginate(lines, miniLinesPerPage)
	if len(pages) == 0 {
		pages = [][]string{{""}}
	}

	w := newMiniPDF()

	// Object layout: 1 catalog, 2 page tree, 3 font, then page/content
	// pairs. IDs are deterministic so the page tree can reference its kids
	// before they are written.
	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	w.addObject("<< /Type /Catalog /Pages 2 0 R >>")
	w.addObject(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), len(pages)))
	w.addObject("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, pageLines := range pages {
		contentID := 5 + 2*i
		w.addObject(fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			miniPageWidth, miniPageHeight, contentID))

		stream := buildMiniPage(pageLines, brand, i+1, len(pages))
		w.addObject(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	return w.finish()
}

// buildMiniPage emits the content stream for one page: header bar, body
// lines, footer rule, footer text, and the page number.
func buildMiniPage(lines []string, brand BrandConfig, pageNum, pageCount int) string {
	var b strings.Builder
	c := brand.PrimaryColor

	// Header bar with brand name.
	fmt.Fprintf(&b, "%.3f %.3f %.3f rg\n0 %d %d 40 re f\n", c.R, c.G, c.B, miniPageHeight-40, miniPageWidth)
	fmt.Fprintf(&b, "BT /F1 14 Tf 1 1 1 rg %d %d Td (%s) Tj ET\n",
		miniMargin, miniPageHeight-26, miniEscape(brand.BrandName))

	// Body lines.
	if len(lines) > 0 {
		fmt.Fprintf(&b, "0 0 0 rg\nBT /F1 11 Tf %d TL %d %d Td\n", miniLeading, miniMargin, miniBodyTop)
		for i, line := range lines {
			if i > 0 {
				b.WriteString("T*\n")
			}
			fmt.Fprintf(&b, "(%s) Tj\n", miniEscape(line))
		}
		b.WriteString("ET\n")
	}

	// Footer rule and text.
	fmt.Fprintf(&b, "0.8 0.8 0.8 RG %d 46 m %d 46 l S\n", miniMargin, miniPageWidth-miniMargin)
	fmt.Fprintf(&b, "0.4 0.4 0.4 rg BT /F1 9 Tf %d 32 Td (%s) Tj ET\n",
		miniMargin, miniEscape(brand.FooterText))
	pageLabel := fmt.Sprintf("Page %d of %d", pageNum, pageCount)
	fmt.Fprintf(&b, "0.4 0.4 0.4 rg BT /F1 9 Tf %d 32 Td (%s) Tj ET",
		miniPageWidth-miniMargin-9*len(pageLabel)/2, miniEscape(pageLabel))

	return b.String()
}

// flattenRecord lays the full content pack out as wrapped text lines.
func flattenRecord(rec ContentRecord) []string {
	var lines []string
	push := func(text string, indent string) {
		for _, l := range wrapText(SanitizeText(text), miniWrapWidth) {
			lines = append(lines, indent+l)
		}
	}
	blank := func() {
		if len(lines) > 0 && lines[len(lines)-1] != "" {
			lines = append(lines, "")
		}
	}

	push(rec.Blog.Headline, "")
	blank()
	push(rec.Blog.Intro, "")
	blank()
	for _, p := range rec.Blog.Body {
		push(p, "")
		blank()
	}
	for _, bl := range rec.Blog.Bullets {
		push("- "+bl, "")
	}
	blank()
	push(rec.Blog.CTA, "")
	blank()

	for _, slug := range orderedPlatforms(rec) {
		caption := SanitizeText(rec.Captions[slug])
		tags := EnforceHashtagRules(slug, rec.Hashtags[slug], caption)
		if caption == "" && len(tags) == 0 {
			continue
		}

		lines = append(lines, "["+DisplayName(slug)+"]")
		push(caption, "")
		if line := hashtagLine(tags); line != "" {
			push(line, "")
		}
		blank()
	}

	// Trim trailing blank.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// paginate chunks lines into pages.
func paginate(lines []string, perPage int) [][]string {
	var pages [][]string
	for len(lines) > 0 {
		n := perPage
		if n > len(lines) {
			n = len(lines)
		}
		pages = append(pages, lines[:n])
		lines = lines[n:]
	}
	return pages
}

// wrapText wraps words to the given width. Words longer than the width are
// emitted on their own line rather than split.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var out []string
	current := words[0]
	for _, w := range words[1:] {
		if len(current)+1+len(w) <= width {
			current += " " + w
			continue
		}
		out = append(out, current)
		current = w
	}
	return append(out, current)
}

// miniEscape maps text into a WinAnsi-safe PDF string literal. Runes
// outside Latin-1 become '?', and the string delimiters are escaped.
func miniEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '(':
			b.WriteString(`\(`)
		case r == ')':
			b.WriteString(`\)`)
		case r == '\n', r == '\r', r == '\t':
			b.WriteByte(' ')
		case r < 32 || r > 255:
			b.WriteByte('?')
		default:
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

// miniPDF accumulates numbered objects and writes the xref table.
type miniPDF struct {
	buf     bytes.Buffer
	offsets []int
}

func newMiniPDF() *miniPDF {
	m := &miniPDF{}
	m.buf.WriteString("%PDF-1.4\n")
	return m
}

// addObject writes the next numbered object.
func (m *miniPDF) addObject(body string) {
	m.offsets = append(m.offsets, m.buf.Len())
	fmt.Fprintf(&m.buf, "%d 0 obj\n%s\nendobj\n", len(m.offsets), body)
}

// finish writes the xref table and trailer and returns the document bytes.
func (m *miniPDF) finish() []byte {
	startXref := m.buf.Len()
	fmt.Fprintf(&m.buf, "xref\n0 %d\n", len(m.offsets)+1)
	m.buf.WriteString("0000000000 65535 f \n")
	for _, off := range m.offsets {
		fmt.Fprintf(&m.buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&m.buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(m.offsets)+1, startXref)
	return m.buf.Bytes()
}
