package contentpack

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ContentProvider generates raw content pack text from a prompt.
// Implementations return the model output verbatim; normalization happens
// downstream.
type ContentProvider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProviderRouter tries providers in order until one returns usable output.
// A quota failure on an early provider never blocks the later ones; the
// chain only fails when every provider has failed.
type ProviderRouter struct {
	providers []ContentProvider
	log       *zap.Logger
}

// NewProviderRouter builds a router over the given providers.
// A nil logger is replaced with a no-op one.
func NewProviderRouter(log *zap.Logger, providers ...ContentProvider) *ProviderRouter {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProviderRouter{providers: providers, log: log}
}

// Providers returns the configured provider names in attempt order.
func (r *ProviderRouter) Providers() []string {
	names := make([]string, len(r.providers))
	for i, p := range r.providers {
		names[i] = p.Name()
	}
	return names
}

// Generate returns the first successful provider output and the provider's
// name. Context cancellation stops the chain immediately; every other
// failure moves on to the next provider.
func (r *ProviderRouter) Generate(ctx context.Context, prompt string) (string, string, error) {
	for _, p := range r.providers {
		if err := ctx.Err(); err != nil {
			return "", "", err
		}

		text, err := p.Generate(ctx, prompt)
		if err != nil {
			if IsQuotaError(err) {
				r.log.Warn("provider quota exhausted, trying next",
					zap.String("provider", p.Name()))
			} else {
				r.log.Warn("provider failed, trying next",
					zap.String("provider", p.Name()), zap.Error(err))
			}
			continue
		}
		if strings.TrimSpace(text) == "" {
			r.log.Warn("provider returned empty output, trying next",
				zap.String("provider", p.Name()))
			continue
		}

		r.log.Info("provider succeeded", zap.String("provider", p.Name()))
		return text, p.Name(), nil
	}
	return "", "", fmt.Errorf("%w: tried %d provider(s)", ErrNoProvider, len(r.providers))
}

// IsQuotaError reports whether err looks like a rate or quota failure.
// Providers wrap ErrQuotaExhausted when they can classify the failure
// themselves; the message check covers SDK errors that reach us unwrapped.
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "quota") ||
		strings.Contains(msg, "429") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "resource_exhausted")
}

// quotaWrap wraps an error with ErrQuotaExhausted when it classifies as a
// quota failure, so callers can use errors.Is.
func quotaWrap(name string, err error) error {
	if IsQuotaError(err) {
		return fmt.Errorf("%w: %s: %v", ErrQuotaExhausted, name, err)
	}
	return fmt.Errorf("%s: %w", name, err)
}
