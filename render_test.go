package contentpack

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

// fakeBuilder is a scriptable documentBuilder.
type fakeBuilder struct {
	html string
	err  error
}

func (b *fakeBuilder) BuildHTML(ctx context.Context, _ ContentRecord, _ BrandConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return b.html, b.err
}

// fakeEngine is a scriptable pdfEngine.
type fakeEngine struct {
	pdf    []byte
	err    error
	calls  int
	closed bool
}

func (e *fakeEngine) ToPDF(_ context.Context, _, _ string) ([]byte, error) {
	e.calls++
	return e.pdf, e.err
}

func (e *fakeEngine) Close() error {
	e.closed = true
	return nil
}

func newTestRenderer(builder documentBuilder, engine pdfEngine) *documentRenderer {
	return &documentRenderer{builder: builder, engine: engine, log: zap.NewNop()}
}

func TestRenderChromeTier(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{pdf: []byte("%PDF-fake")}
	r := newTestRenderer(&fakeBuilder{html: "<html></html>"}, engine)

	pdf, engineName, err := r.Render(context.Background(), testRecord(), DefaultBrand())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if engineName != EngineChrome {
		t.Errorf("engine = %q, want %q", engineName, EngineChrome)
	}
	if !bytes.Equal(pdf, []byte("%PDF-fake")) {
		t.Error("chrome tier output not returned")
	}
}

func TestRenderFallsBackOnEngineFailure(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{err: errors.New("chrome exploded")}
	r := newTestRenderer(&fakeBuilder{html: "<html></html>"}, engine)

	pdf, engineName, err := r.Render(context.Background(), testRecord(), DefaultBrand())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if engineName != EngineMinimal {
		t.Errorf("engine = %q, want %q", engineName, EngineMinimal)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-1.4")) {
		t.Error("minimal tier should produce a valid PDF")
	}
}

func TestRenderFallsBackOnBuilderFailure(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{pdf: []byte("unused")}
	r := newTestRenderer(&fakeBuilder{err: errors.New("template broken")}, engine)

	pdf, engineName, err := r.Render(context.Background(), testRecord(), DefaultBrand())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if engineName != EngineMinimal {
		t.Errorf("engine = %q, want %q", engineName, EngineMinimal)
	}
	if engine.calls != 0 {
		t.Error("engine should not run when the builder fails")
	}
	if len(pdf) == 0 {
		t.Error("minimal tier returned no bytes")
	}
}

func TestRenderContextCanceled(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(&fakeBuilder{html: "x"}, &fakeEngine{pdf: []byte("y")})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := r.Render(ctx, testRecord(), DefaultBrand())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Render() error = %v, want context.Canceled", err)
	}
}

func TestRenderEngineContextError(t *testing.T) {
	t.Parallel()

	// A deadline error from the engine must propagate, not degrade to the
	// minimal tier.
	engine := &fakeEngine{err: context.DeadlineExceeded}
	r := newTestRenderer(&fakeBuilder{html: "x"}, engine)

	_, _, err := r.Render(context.Background(), testRecord(), DefaultBrand())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Render() error = %v, want DeadlineExceeded", err)
	}
}

func TestRendererClose(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{}
	r := newTestRenderer(&fakeBuilder{}, engine)
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !engine.closed {
		t.Error("Close() must reach the engine")
	}
}

func TestIsContextErr(t *testing.T) {
	t.Parallel()

	if !isContextErr(context.Canceled) || !isContextErr(context.DeadlineExceeded) {
		t.Error("context errors must classify as such")
	}
	if isContextErr(errors.New("other")) || isContextErr(nil) {
		t.Error("non-context errors must not classify")
	}
}
