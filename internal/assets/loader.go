package assets

// AssetLoader loads named styles and templates.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
	LoadTemplate(name string) (string, error)
}

// LoadStyle loads a CSS style from the embedded assets.
func LoadStyle(name string) (string, error) {
	return NewEmbeddedLoader().LoadStyle(name)
}

// LoadTemplate loads an HTML template from the embedded assets.
func LoadTemplate(name string) (string, error) {
	return NewEmbeddedLoader().LoadTemplate(name)
}
