package contentpack

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Engine names reported on produced documents.
const (
	EngineChrome  = "chrome"
	EngineMinimal = "minimal"
)

// documentRenderer runs the two-tier render: headless Chrome first, the
// minimal writer when Chrome is unavailable or fails. The minimal tier
// cannot fail, so Render only errors on context cancellation.
type documentRenderer struct {
	builder documentBuilder
	engine  pdfEngine
	log     *zap.Logger
}

// newDocumentRenderer wires the production builder and Chrome engine.
func newDocumentRenderer(timeout time.Duration, log *zap.Logger, loader AssetLoader) *documentRenderer {
	return &documentRenderer{
		builder: newHTMLDocumentBuilder(loader),
		engine:  newRodEngine(timeout),
		log:     log,
	}
}

// Render produces PDF bytes for a record and reports which engine made
// them. Rich-tier failures are logged and absorbed; the caller always gets
// a document unless the context is done.
func (r *documentRenderer) Render(ctx context.Context, rec ContentRecord, brand BrandConfig) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	htmlContent, err := r.builder.BuildHTML(ctx, rec, brand)
	if err != nil {
		if isContextErr(err) {
			return nil, "", err
		}
		r.log.Warn("document build failed, using minimal engine", zap.Error(err))
		return renderMinimalPDF(rec, brand), EngineMinimal, nil
	}

	pdf, err := r.engine.ToPDF(ctx, htmlContent, brand.FooterText)
	if err != nil {
		if isContextErr(err) {
			return nil, "", err
		}
		r.log.Warn("chrome engine failed, using minimal engine", zap.Error(err))
		return renderMinimalPDF(rec, brand), EngineMinimal, nil
	}

	return pdf, EngineChrome, nil
}

// Close releases engine resources.
func (r *documentRenderer) Close() error {
	if r.engine != nil {
		return r.engine.Close()
	}
	return nil
}

// isContextErr reports whether err is a cancellation rather than a render
// failure.
func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
