package contentpack

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// minFontFileSize rejects truncated font downloads. A valid TTF is far
// larger than 1KB; anything under it is a placeholder or a failed fetch.
const minFontFileSize = 1024

// dejaVuCandidates are checked in order for the regular and bold faces.
var dejaVuCandidates = [][2]string{
	{"fonts/DejaVuSans.ttf", "fonts/DejaVuSans-Bold.ttf"},
	{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	},
	{
		"/usr/share/fonts/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf",
	},
}

// fontRegistry resolves the document font exactly once per process.
// Registration is idempotent: concurrent and repeated callers all observe
// the first resolution.
type fontRegistry struct {
	once   sync.Once
	css    string
	family string
}

var defaultFonts fontRegistry

// resolve probes for usable DejaVu files and builds the @font-face CSS.
// Missing or corrupt files degrade silently to the built-in stack.
func (f *fontRegistry) resolve() {
	f.once.Do(func() {
		f.family = builtinFontFamily
		for _, pair := range dejaVuCandidates {
			regular, bold := pair[0], pair[1]
			if validateFontFile(regular) != nil {
				continue
			}
			css := fontFaceCSS("DejaVu Sans", regular, 400)
			if validateFontFile(bold) == nil {
				css += fontFaceCSS("DejaVu Sans", bold, 700)
			}
			f.css = css
			f.family = `'DejaVu Sans', ` + builtinFontFamily
			return
		}
	})
}

// FontCSS returns the @font-face rules for the resolved document font.
// Empty when no DejaVu installation was found.
func FontCSS() string {
	defaultFonts.resolve()
	return defaultFonts.css
}

// FontFamily returns the CSS font-family stack for documents.
func FontFamily() string {
	defaultFonts.resolve()
	return defaultFonts.family
}

// HasDejaVu reports whether a usable DejaVu installation was found.
func HasDejaVu() bool {
	defaultFonts.resolve()
	return defaultFonts.css != ""
}

// validateFontFile checks that path exists and is large enough to be a
// real font file.
func validateFontFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() || info.Size() < minFontFileSize {
		return fmt.Errorf("%w: %s (%d bytes)", ErrFontCorrupt, path, info.Size())
	}
	return nil
}

// fontFaceCSS builds one @font-face rule pointing at a local file URL.
func fontFaceCSS(family, path string, weight int) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return fmt.Sprintf(`
@font-face {
  font-family: "%s";
  src: url("file://%s") format("truetype");
  font-weight: %d;
}
`, family, abs, weight)
}
