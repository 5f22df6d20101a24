package contentpack

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestRenderMinimalPDFStructure(t *testing.T) {
	t.Parallel()

	pdf := renderMinimalPDF(testRecord(), DefaultBrand())

	if !bytes.HasPrefix(pdf, []byte("%PDF-1.4\n")) {
		t.Error("missing PDF header")
	}
	if !bytes.HasSuffix(pdf, []byte("%%EOF\n")) {
		t.Error("missing EOF marker")
	}
	for _, want := range []string{
		"/Type /Catalog",
		"/Type /Pages",
		"/Type /Page ",
		"/BaseFont /Helvetica",
		"xref",
		"trailer",
		"startxref",
	} {
		if !bytes.Contains(pdf, []byte(want)) {
			t.Errorf("PDF missing %q", want)
		}
	}

	// Content reaches the page streams.
	for _, want := range []string{
		"Growth Basics",
		"(- Point one)",
		"[Instagram]",
		"[Twitter]",
		"Page 1 of",
	} {
		if !bytes.Contains(pdf, []byte(want)) {
			t.Errorf("PDF content missing %q", want)
		}
	}
}

func TestRenderMinimalPDFEmptyRecord(t *testing.T) {
	t.Parallel()

	pdf := renderMinimalPDF(ContentRecord{}, DefaultBrand())

	if !bytes.HasPrefix(pdf, []byte("%PDF-1.4\n")) {
		t.Error("missing PDF header")
	}
	if !bytes.Contains(pdf, []byte("/Count 1")) {
		t.Error("empty record should still produce one page")
	}
}

func TestRenderMinimalPDFPagination(t *testing.T) {
	t.Parallel()

	rec := ContentRecord{Blog: Blog{Headline: "Long"}}
	for i := 0; i < miniLinesPerPage*2; i++ {
		rec.Blog.Body = append(rec.Blog.Body, fmt.Sprintf("Paragraph number %d.", i))
	}
	pdf := renderMinimalPDF(rec, DefaultBrand())

	pageCount := bytes.Count(pdf, []byte("/Type /Page "))
	if pageCount < 2 {
		t.Errorf("got %d pages, want at least 2", pageCount)
	}
	if !bytes.Contains(pdf, []byte(fmt.Sprintf("/Count %d", pageCount))) {
		t.Errorf("page tree count does not match %d page objects", pageCount)
	}
	if !bytes.Contains(pdf, []byte(fmt.Sprintf("(Page %d of %d)", pageCount, pageCount))) {
		t.Error("last page label missing")
	}
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	lines := []string{"a", "b", "c", "d", "e"}
	pages := paginate(lines, 2)
	want := [][]string{{"a", "b"}, {"c", "d"}, {"e"}}
	if !reflect.DeepEqual(pages, want) {
		t.Errorf("paginate() = %v, want %v", pages, want)
	}
	if paginate(nil, 2) != nil {
		t.Error("paginate(nil) should be nil")
	}
}

func TestWrapText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits on one line", "short text", 20, []string{"short text"}},
		{"wraps at width", "one two three four", 9, []string{"one two", "three", "four"}},
		{"long word unsplit", "a verylongunbreakableword b", 10, []string{"a", "verylongunbreakableword", "b"}},
		{"collapses whitespace", "a\n\tb   c", 20, []string{"a b c"}},
		{"empty", "", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := wrapText(tt.text, tt.width)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wrapText(%q, %d) = %v, want %v", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestMiniEscape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"parens escaped", "a (b) c", `a \(b\) c`},
		{"backslash escaped", `a\b`, `a\\b`},
		{"newline to space", "a\nb", "a b"},
		{"tab to space", "a\tb", "a b"},
		{"latin1 kept as single byte", "café 世界", "caf\xe9 ??"},
		{"control replaced", "a\x07b", "a?b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := miniEscape(tt.input); got != tt.want {
				t.Errorf("miniEscape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFlattenRecord(t *testing.T) {
	t.Parallel()

	lines := flattenRecord(testRecord())

	if len(lines) == 0 {
		t.Fatal("no lines")
	}
	if lines[0] != "Growth Basics" {
		t.Errorf("first line = %q, want headline", lines[0])
	}
	if lines[len(lines)-1] == "" {
		t.Error("trailing blank line not trimmed")
	}

	joined := strings.Join(lines, "\n")
	for _, want := range []string{"[Instagram]", "[Twitter]", "- Point two", "#quick"} {
		if !strings.Contains(joined, want) {
			t.Errorf("flattened lines missing %q", want)
		}
	}

	// Instagram before x, per render order.
	if strings.Index(joined, "[Instagram]") > strings.Index(joined, "[Twitter]") {
		t.Error("platform sections out of render order")
	}
}

func TestFlattenRecordExtraAndEmptyPlatforms(t *testing.T) {
	t.Parallel()

	rec := testRecord()
	rec.Captions["threads"] = "Hello from Threads"
	rec.Captions["facebook"] = ""
	rec.PlatformOrder = []string{"threads", "x", "instagram", "facebook"}

	joined := strings.Join(flattenRecord(rec), "\n")

	if !strings.Contains(joined, "[Threads]") || !strings.Contains(joined, "Hello from Threads") {
		t.Error("platform outside the canonical five was dropped")
	}
	if strings.Index(joined, "[Threads]") < strings.Index(joined, "[Twitter]") {
		t.Error("extra platform section must follow the canonical five")
	}
	if strings.Contains(joined, "[Facebook]") {
		t.Error("section with no caption and no hashtags must be omitted")
	}
}
