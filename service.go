package contentpack

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SourceFallback marks documents built from deterministic fallback content.
const SourceFallback = "fallback"

// File permission constants.
const (
	dirPermissions  = 0o750
	filePermissions = 0o644
)

// ContentSource produces raw content pack text and reports which backend
// made it. ProviderRouter is the production implementation.
type ContentSource interface {
	Generate(ctx context.Context, prompt string) (text, source string, err error)
}

// Compile-time interface check.
var _ ContentSource = (*ProviderRouter)(nil)

// Service orchestrates the generate -> normalize -> render pipeline.
type Service struct {
	cfg      serviceConfig
	source   ContentSource
	renderer *documentRenderer
	log      *zap.Logger
}

// New creates a Service with default configuration. Without WithProviders
// the service runs offline and every document uses fallback content.
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout: defaultTimeout,
			brand:   DefaultBrand(),
		},
		log: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create the renderer if not injected (e.g., by tests)
	if s.renderer == nil {
		s.renderer = newDocumentRenderer(s.cfg.timeout, s.log, s.cfg.assets)
	}

	return s
}

// WithProviders sets the content source consulted before falling back to
// deterministic content.
func WithProviders(src ContentSource) Option {
	return func(s *Service) {
		s.source = src
	}
}

// WithLogger sets the service logger. Panics on nil (programmer error).
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("contentpack: WithLogger requires a non-nil logger")
	}
	return func(s *Service) {
		s.log = log
	}
}

// ProduceDocument generates, normalizes, and renders one content pack.
// Provider failures degrade to fallback content and engine failures degrade
// to the minimal renderer, so the only errors are validation and context
// cancellation.
func (s *Service) ProduceDocument(ctx context.Context, req Request) (*Document, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.cfg.brand.Validate(); err != nil {
		return nil, err
	}

	rec, source, err := s.buildRecord(ctx, req)
	if err != nil {
		return nil, err
	}

	pdf, engine, err := s.renderer.Render(ctx, rec, s.cfg.brand)
	if err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}

	s.log.Info("document produced",
		zap.String("source", source),
		zap.String("engine", engine),
		zap.Int("bytes", len(pdf)))

	return &Document{PDF: pdf, Record: rec, Source: source, Engine: engine}, nil
}

// buildRecord asks the content source for a pack and normalizes it.
// Anything short of a context cancellation degrades to fallback content.
func (s *Service) buildRecord(ctx context.Context, req Request) (ContentRecord, string, error) {
	if s.source == nil {
		return FallbackContent(req), SourceFallback, nil
	}

	text, source, err := s.source.Generate(ctx, BuildPrompt(req))
	if err != nil {
		if isContextErr(err) {
			return ContentRecord{}, "", err
		}
		s.log.Warn("content source failed, using fallback content", zap.Error(err))
		return FallbackContent(req), SourceFallback, nil
	}
	if strings.TrimSpace(text) == "" {
		s.log.Warn("content source returned empty text, using fallback content",
			zap.String("source", source))
		return FallbackContent(req), SourceFallback, nil
	}

	return NormalizeModelOutput(text), source, nil
}

// WriteDocument stores a produced document under dir with a random
// 12-hex-digit name and returns the full path.
func (s *Service) WriteDocument(doc *Document, dir string) (string, error) {
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	name := strings.ReplaceAll(uuid.New().String(), "-", "")[:12] + ".pdf"
	path := filepath.Join(dir, name)

	// #nosec G306 -- PDFs are meant to be readable
	if err := os.WriteFile(path, doc.PDF, filePermissions); err != nil {
		return "", fmt.Errorf("writing document: %w", err)
	}
	return path, nil
}

// Close releases renderer resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.renderer != nil {
		return s.renderer.Close()
	}
	return nil
}

// RenderTimeout returns the configured render timeout.
func (s *Service) RenderTimeout() time.Duration {
	return s.cfg.timeout
}
