package contentpack

import (
	"fmt"
	"strings"
)

// builtinFontFamily is the fallback stack when no DejaVu files are found.
const builtinFontFamily = "'Helvetica Neue', Arial, sans-serif"

// Logo images are clamped to this box in the document header.
const logoMaxPx = 48

// buildDocumentCSS generates the complete stylesheet for a branded
// document: base typography from the embedded stylesheet caller, brand
// colors, the header strip, platform banners, and the CTA card.
func buildDocumentCSS(brand BrandConfig) string {
	var buf strings.Builder

	buf.WriteString(FontCSS())

	buf.WriteString(fmt.Sprintf(`
body {
  font-family: %s;
  color: #1A1A1A;
  font-size: 11pt;
  line-height: 1.5;
}
`, FontFamily()))

	accent := brand.PrimaryColor.Hex()
	buf.WriteString(fmt.Sprintf(`
/* Header strip */
.doc-header {
  display: flex;
  align-items: center;
  gap: 12px;
  border-bottom: 2px solid %s;
  padding-bottom: 10px;
  margin-bottom: 18px;
}
.doc-header img.logo {
  max-width: %dpx;
  max-height: %dpx;
}
.doc-header .brand-name {
  font-size: 14pt;
  font-weight: bold;
  color: %s;
}
.doc-header .brand-site {
  margin-left: auto;
  font-size: 9pt;
}

h1.headline {
  font-size: 20pt;
  color: %s;
  margin: 0 0 10px 0;
}
`, accent, logoMaxPx, logoMaxPx, accent, accent))

	buf.WriteString(fmt.Sprintf(`
/* CTA card */
.cta-card {
  background: #F5F7FF;
  border: 1px solid #C7D6F5;
  border-left: 4px solid %s;
  border-radius: 8px;
  padding: 12px 16px;
  margin: 16px 0;
  font-weight: bold;
}
`, accent))

	buf.WriteString(`
/* Platform sections */
.divider {
  border: none;
  border-top: 1px solid #DDDDDD;
  margin: 18px 0;
}
.platform-banner {
  display: flex;
  align-items: center;
  gap: 8px;
  color: #FFFFFF;
  border-radius: 6px;
  padding: 6px 12px;
  margin: 14px 0 6px 0;
  font-weight: bold;
  break-after: avoid;
  page-break-after: avoid;
}
.platform-banner img.icon {
  width: 18px;
  height: 18px;
}
.platform-section {
  break-inside: avoid;
  page-break-inside: avoid;
}
.hashtags {
  color: #3A5FA8;
  font-size: 9.5pt;
}
`)

	buf.WriteString(buildBannerCSS(brand))
	return buf.String()
}

// buildBannerCSS emits one background rule per supported platform; unknown
// platforms inherit the brand accent.
func buildBannerCSS(brand BrandConfig) string {
	var buf strings.Builder
	buf.WriteString(fmt.Sprintf(`
.platform-banner { background: %s; }
`, brand.PrimaryColor.Hex()))
	for _, slug := range renderOrder {
		buf.WriteString(fmt.Sprintf(`.platform-banner.%s { background: %s; }
`, slug, platformColors[slug]))
	}
	return buf.String()
}
