package contentpack

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// fakeProvider is a scriptable ContentProvider for router tests.
type fakeProvider struct {
	name  string
	text  string
	err   error
	calls int
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Generate(_ context.Context, _ string) (string, error) {
	p.calls++
	return p.text, p.err
}

func TestProviderRouterFirstSuccess(t *testing.T) {
	t.Parallel()

	first := &fakeProvider{name: "first", text: "output"}
	second := &fakeProvider{name: "second", text: "unused"}
	router := NewProviderRouter(nil, first, second)

	text, source, err := router.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if text != "output" || source != "first" {
		t.Errorf("Generate() = (%q, %q), want (output, first)", text, source)
	}
	if second.calls != 0 {
		t.Error("second provider should not be called after first succeeds")
	}
}

func TestProviderRouterQuotaRescue(t *testing.T) {
	t.Parallel()

	quota := &fakeProvider{name: "quota", err: fmt.Errorf("%w: quota", ErrQuotaExhausted)}
	rescue := &fakeProvider{name: "rescue", text: "rescued"}
	router := NewProviderRouter(nil, quota, rescue)

	text, source, err := router.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if text != "rescued" || source != "rescue" {
		t.Errorf("Generate() = (%q, %q), want (rescued, rescue)", text, source)
	}
}

func TestProviderRouterSkipsEmptyOutput(t *testing.T) {
	t.Parallel()

	empty := &fakeProvider{name: "empty", text: "   \n"}
	real := &fakeProvider{name: "real", text: "content"}
	router := NewProviderRouter(nil, empty, real)

	text, source, err := router.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if text != "content" || source != "real" {
		t.Errorf("Generate() = (%q, %q), want (content, real)", text, source)
	}
}

func TestProviderRouterExhaustion(t *testing.T) {
	t.Parallel()

	a := &fakeProvider{name: "a", err: errors.New("boom")}
	b := &fakeProvider{name: "b", err: errors.New("bust")}
	router := NewProviderRouter(nil, a, b)

	_, _, err := router.Generate(context.Background(), "prompt")
	if !errors.Is(err, ErrNoProvider) {
		t.Errorf("Generate() error = %v, want ErrNoProvider", err)
	}
	if a.calls != 1 || b.calls != 1 {
		t.Errorf("calls = (%d, %d), want both providers tried", a.calls, b.calls)
	}
}

func TestProviderRouterEmptyChain(t *testing.T) {
	t.Parallel()

	router := NewProviderRouter(nil)
	_, _, err := router.Generate(context.Background(), "prompt")
	if !errors.Is(err, ErrNoProvider) {
		t.Errorf("Generate() error = %v, want ErrNoProvider", err)
	}
}

func TestProviderRouterContextCanceled(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{name: "p", text: "output"}
	router := NewProviderRouter(nil, p)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := router.Generate(ctx, "prompt")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Generate() error = %v, want context.Canceled", err)
	}
	if p.calls != 0 {
		t.Error("provider should not be called after cancellation")
	}
}

func TestProviderRouterProviders(t *testing.T) {
	t.Parallel()

	router := NewProviderRouter(nil,
		&fakeProvider{name: "gemini"},
		&fakeProvider{name: "openrouter"},
	)
	got := router.Providers()
	if len(got) != 2 || got[0] != "gemini" || got[1] != "openrouter" {
		t.Errorf("Providers() = %v", got)
	}
}

func TestIsQuotaError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"sentinel", ErrQuotaExhausted, true},
		{"quota in message", errors.New("daily quota exceeded"), true},
		{"429 status", errors.New("HTTP 429 from upstream"), true},
		{"rate limit", errors.New("Rate Limit reached"), true},
		{"resource exhausted", errors.New("code resource_exhausted"), true},
		{"unrelated", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsQuotaError(tt.err); got != tt.want {
				t.Errorf("IsQuotaError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestQuotaWrap(t *testing.T) {
	t.Parallel()

	wrapped := quotaWrap("gemini", errors.New("429 too many requests"))
	if !errors.Is(wrapped, ErrQuotaExhausted) {
		t.Errorf("quotaWrap(429) = %v, want ErrQuotaExhausted chain", wrapped)
	}

	plain := quotaWrap("gemini", errors.New("connection refused"))
	if errors.Is(plain, ErrQuotaExhausted) {
		t.Errorf("quotaWrap(refused) = %v, should not be quota", plain)
	}
}
