package contentpack

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateFontFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.ttf")
	if err := os.WriteFile(valid, bytes.Repeat([]byte{0x42}, 2048), 0o644); err != nil {
		t.Fatal(err)
	}
	truncated := filepath.Join(dir, "truncated.ttf")
	if err := os.WriteFile(truncated, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"valid size", valid, nil},
		{"under one kilobyte", truncated, ErrFontCorrupt},
		{"directory", dir, ErrFontCorrupt},
		{"missing file", filepath.Join(dir, "nope.ttf"), os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFontFile(tt.path)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("validateFontFile(%q) = %v, want nil", tt.path, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateFontFile(%q) = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestFontFaceCSS(t *testing.T) {
	t.Parallel()

	css := fontFaceCSS("DejaVu Sans", "/usr/share/fonts/dejavu/DejaVuSans.ttf", 700)

	wantContains := []string{
		`font-family: "DejaVu Sans"`,
		`file:///usr/share/fonts/dejavu/DejaVuSans.ttf`,
		`format("truetype")`,
		"font-weight: 700",
	}
	for _, want := range wantContains {
		if !strings.Contains(css, want) {
			t.Errorf("font-face CSS missing %q in %q", want, css)
		}
	}
}

func TestFontRegistryIdempotent(t *testing.T) {
	t.Parallel()

	// The registry resolves once; repeated reads must agree with each other
	// whatever the host fonts look like.
	family := FontFamily()
	if family == "" {
		t.Fatal("FontFamily() must never be empty")
	}
	if FontFamily() != family {
		t.Error("FontFamily() changed between calls")
	}
	if HasDejaVu() != (FontCSS() != "") {
		t.Error("HasDejaVu() must track FontCSS() presence")
	}
	if !HasDejaVu() && family != builtinFontFamily {
		t.Errorf("family = %q, want builtin stack without DejaVu", family)
	}
}
