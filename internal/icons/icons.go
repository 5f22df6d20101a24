// Package icons generates platform badge icons for document banners.
//
// Real platform logos are trademarked, so banners use a generated badge: a
// colored disc carrying the platform initial. Icons are rendered once per
// (initial, color, size) and cached as PNG data URIs.
package icons

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

var (
	mu    sync.Mutex
	cache = map[string]string{}
)

// DataURI returns a PNG data URI for a disc icon with the given fill color
// and a single white initial. The color must be a #RRGGBB hex string.
func DataURI(initial, hexColor string, size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("icons: invalid size %d", size)
	}
	r, g, b, err := parseHex(hexColor)
	if err != nil {
		return "", err
	}
	initial = strings.ToUpper(firstRune(initial))

	key := fmt.Sprintf("%s|%s|%d", initial, hexColor, size)
	mu.Lock()
	defer mu.Unlock()
	if uri, ok := cache[key]; ok {
		return uri, nil
	}

	dc := gg.NewContext(size, size)
	half := float64(size) / 2
	dc.DrawCircle(half, half, half)
	dc.SetColor(color.NRGBA{R: r, G: g, B: b, A: 255})
	dc.Fill()

	if initial != "" {
		dc.SetFontFace(basicfont.Face7x13)
		dc.SetRGB(1, 1, 1)
		dc.DrawStringAnchored(initial, half, half, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return "", fmt.Errorf("icons: encoding png: %w", err)
	}

	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	cache[key] = uri
	return uri, nil
}

// parseHex parses a #RRGGBB color.
func parseHex(s string) (r, g, b uint8, err error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, fmt.Errorf("icons: invalid color %q", s)
	}
	var rv, gv, bv int
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &rv, &gv, &bv); err != nil {
		return 0, 0, 0, fmt.Errorf("icons: invalid color %q", s)
	}
	return uint8(rv), uint8(gv), uint8(bv), nil
}

// firstRune returns the first rune of s as a string, or "".
func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
