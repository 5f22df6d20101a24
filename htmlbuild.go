package contentpack

import (
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/content365/go-contentpack/internal/assets"
	"github.com/content365/go-contentpack/internal/icons"
)

// bannerIconPx is the rendered size of generated platform icons.
const bannerIconPx = 36

// documentBuilder assembles the full HTML page for a content record.
type documentBuilder interface {
	BuildHTML(ctx context.Context, rec ContentRecord, brand BrandConfig) (string, error)
}

// htmlDocumentBuilder implements documentBuilder with the embedded template.
type htmlDocumentBuilder struct {
	tmpl      *template.Template
	baseCSS   string
	fragments fragmentRenderer
}

// Compile-time interface check.
var _ documentBuilder = (*htmlDocumentBuilder)(nil)

// newHTMLDocumentBuilder loads the document template and base stylesheet
// from the given loader (nil means embedded assets). Panics if the assets
// are broken (programmer error for embedded, operator error surfaced early
// for custom asset directories).
func newHTMLDocumentBuilder(loader AssetLoader) *htmlDocumentBuilder {
	if loader == nil {
		loader = assets.NewEmbeddedLoader()
	}
	tmplContent, err := loader.LoadTemplate("document")
	if err != nil {
		panic("failed to load document template: " + err.Error())
	}
	tmpl, err := template.New("document").Parse(tmplContent)
	if err != nil {
		panic("failed to parse document template: " + err.Error())
	}
	baseCSS, err := loader.LoadStyle("base")
	if err != nil {
		panic("failed to load base stylesheet: " + err.Error())
	}
	return &htmlDocumentBuilder{
		tmpl:      tmpl,
		baseCSS:   baseCSS,
		fragments: newMarkdownRenderer(),
	}
}

// documentData is the template payload for one rendered document.
type documentData struct {
	BrandName   string
	Website     string
	WebsiteHref string
	LogoURI     template.URL
	Headline    string
	Intro       template.HTML
	Body        []template.HTML
	Bullets     []template.HTML
	CTA         template.HTML
	Platforms   []platformSection
	BaseCSS     template.CSS
	BrandCSS    template.CSS
}

// platformSection is one platform block in the document.
type platformSection struct {
	Slug     string
	Name     string
	IconURI  template.URL
	Caption  template.HTML
	Hashtags string
}

// BuildHTML renders a content record into a complete branded HTML page.
func (b *htmlDocumentBuilder) BuildHTML(ctx context.Context, rec ContentRecord, brand BrandConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data := documentData{
		BrandName:   SanitizeText(brand.BrandName),
		Website:     brand.Website,
		WebsiteHref: websiteHref(brand.Website),
		LogoURI:     template.URL(logoDataURI(brand.LogoPath)),
		Headline:    SanitizeText(rec.Blog.Headline),
		BaseCSS:     template.CSS(b.baseCSS),
		BrandCSS:    template.CSS(buildDocumentCSS(brand)),
	}

	if intro := SanitizeText(rec.Blog.Intro); intro != "" {
		data.Intro = template.HTML(b.fragments.Fragment(intro)) // #nosec G203 -- fragment output is escaped or goldmark-sanitized
	}
	for _, p := range rec.Blog.Body {
		if p = SanitizeText(p); p != "" {
			data.Body = append(data.Body, template.HTML(b.fragments.Fragment(p))) // #nosec G203
		}
	}
	for _, bl := range rec.Blog.Bullets {
		if bl = SanitizeText(bl); bl != "" {
			data.Bullets = append(data.Bullets, template.HTML("• "+b.fragments.Fragment(bl))) // #nosec G203
		}
	}
	if cta := SanitizeText(rec.Blog.CTA); cta != "" {
		data.CTA = template.HTML(b.fragments.Fragment(cta)) // #nosec G203
	}

	for _, slug := range orderedPlatforms(rec) {
		caption := SanitizeText(rec.Captions[slug])
		tags := EnforceHashtagRules(slug, rec.Hashtags[slug], caption)
		// A section with no caption and no tags never renders a banner.
		if caption == "" && len(tags) == 0 {
			continue
		}

		section := platformSection{
			Slug:     slug,
			Name:     DisplayName(slug),
			Hashtags: hashtagLine(tags),
		}
		if caption != "" {
			section.Caption = template.HTML(b.fragments.Fragment(caption)) // #nosec G203
		}
		if uri, err := icons.DataURI(DisplayName(slug), PlatformColor(slug, brand.PrimaryColor.Hex()), bannerIconPx); err == nil {
			section.IconURI = template.URL(uri) // #nosec G203 -- generated data URI
		}
		data.Platforms = append(data.Platforms, section)
	}

	var buf strings.Builder
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}
	return buf.String(), nil
}

// hashtagLine joins tags back into "#tag" form for display.
func hashtagLine(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = "#" + t
	}
	return strings.Join(parts, " ")
}

// websiteHref prefixes bare hosts with https:// so header links stay
// clickable.
func websiteHref(site string) string {
	if site == "" {
		return ""
	}
	if strings.HasPrefix(site, "http://") || strings.HasPrefix(site, "https://") {
		return site
	}
	return "https://" + site
}

// logoDataURI reads a logo file into a data URI. Any failure (missing file,
// unreadable, unknown type) returns "" and the header renders without a
// logo; a bad logo must never block document generation.
func logoDataURI(path string) string {
	if path == "" {
		return ""
	}
	mime := logoMIME(filepath.Ext(path))
	if mime == "" {
		return ""
	}
	data, err := os.ReadFile(path) // #nosec G304 -- operator-provided brand asset
	if err != nil || len(data) == 0 {
		return ""
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// logoMIME maps supported logo extensions to MIME types.
func logoMIME(ext string) string {
	switch strings.ToLower(ext) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".svg":
		return "image/svg+xml"
	}
	return ""
}
