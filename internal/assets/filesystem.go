package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// FilesystemLoader loads assets from a directory with styles/ and
// templates/ subdirectories, falling back to the embedded assets for names
// the directory does not provide.
type FilesystemLoader struct {
	basePath string
	fallback *EmbeddedLoader
}

// NewFilesystemLoader creates a FilesystemLoader rooted at basePath.
func NewFilesystemLoader(basePath string) *FilesystemLoader {
	return &FilesystemLoader{basePath: basePath, fallback: NewEmbeddedLoader()}
}

// LoadStyle loads a CSS style from basePath/styles, falling back to the
// embedded style of the same name.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(f.basePath, "styles", name+".css")
	content, err := os.ReadFile(path) // #nosec G304 -- name validated above
	if err == nil {
		return string(content), nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("reading style %q: %w", name, err)
	}
	return f.fallback.LoadStyle(name)
}

// LoadTemplate loads an HTML template from basePath/templates, falling back
// to the embedded template of the same name.
func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(f.basePath, "templates", name+".html")
	content, err := os.ReadFile(path) // #nosec G304 -- name validated above
	if err == nil {
		return string(content), nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("reading template %q: %w", name, err)
	}
	return f.fallback.LoadTemplate(name)
}

// Compile-time interface check.
var _ AssetLoader = (*FilesystemLoader)(nil)
