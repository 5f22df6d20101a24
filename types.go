package contentpack

import (
	"fmt"
	"time"
)

// Word count buckets for generated content.
const (
	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"
)

// Blog is the long-form section of a content pack.
type Blog struct {
	Headline string
	Intro    string
	Body     []string
	Bullets  []string
	CTA      string
}

// ContentRecord is the normalized content pack. Captions and Hashtags are
// keyed by platform slug (see NormalizePlatform). PlatformOrder records the
// slugs in the order the source first mentioned them; platforms outside the
// canonical five render after it in this order.
type ContentRecord struct {
	Blog          Blog
	Captions      map[string]string
	Hashtags      map[string][]string
	PlatformOrder []string
}

// RGB is a color with components in [0, 1].
type RGB struct {
	R float64
	G float64
	B float64
}

// Hex returns the color as a #RRGGBB string.
func (c RGB) Hex() string {
	clamp := func(v float64) int {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 255
		}
		return int(v*255 + 0.5)
	}
	return fmt.Sprintf("#%02X%02X%02X", clamp(c.R), clamp(c.G), clamp(c.B))
}

// BrandConfig controls document branding.
type BrandConfig struct {
	BrandName    string
	Website      string
	LogoPath     string
	PrimaryColor RGB
	FooterText   string
	CompanyName  string
}

// DefaultBrand returns the neutral branding used when no config is provided.
func DefaultBrand() BrandConfig {
	return BrandConfig{
		BrandName:    "Content365",
		Website:      "content365.xyz",
		PrimaryColor: RGB{R: 0.12, G: 0.46, B: 0.95},
		FooterText:   "Generated by Content365",
		CompanyName:  "Content365",
	}
}

// Validate checks brand settings. A zero BrandConfig is invalid; use
// DefaultBrand for defaults.
func (b *BrandConfig) Validate() error {
	if b == nil {
		return nil
	}
	if b.BrandName == "" {
		return ErrMissingBrand
	}
	for _, v := range []float64{b.PrimaryColor.R, b.PrimaryColor.G, b.PrimaryColor.B} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %.2f (must be between 0 and 1)", ErrInvalidColor, v)
		}
	}
	return nil
}

// Request describes the content pack to generate.
type Request struct {
	Topic     string
	Audience  string
	Tone      string
	Style     string
	Length    string   // "short", "medium", "long" (default: "medium")
	Platforms []string // platform names, any case; normalized internally
	Hashtags  []string // user-supplied tags merged into fallback content
}

// Validate checks that required request fields are present.
func (r *Request) Validate() error {
	if r.Topic == "" {
		return ErrEmptyTopic
	}
	return nil
}

// Document is a produced content pack with its rendered PDF.
type Document struct {
	PDF    []byte
	Record ContentRecord
	Source string // provider name or "fallback"
	Engine string // "chrome" or "minimal"
}

// AssetLoader loads named stylesheets and HTML templates used to build
// rich-tier documents. The internal/assets package provides embedded and
// filesystem-backed implementations.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
	LoadTemplate(name string) (string, error)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
	brand   BrandConfig
	assets  AssetLoader
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the render timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("contentpack: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithBrand sets the branding applied to rendered documents.
func WithBrand(b BrandConfig) Option {
	return func(s *Service) {
		s.cfg.brand = b
	}
}

// WithAssetLoader overrides the embedded document template and stylesheet.
func WithAssetLoader(loader AssetLoader) Option {
	return func(s *Service) {
		s.cfg.assets = loader
	}
}
