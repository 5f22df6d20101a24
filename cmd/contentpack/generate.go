package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	contentpack "github.com/content365/go-contentpack"
	"github.com/content365/go-contentpack/internal/assets"
	"github.com/content365/go-contentpack/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidLength  = errors.New("invalid length (want short, medium, or long)")
	ErrInvalidTimeout = errors.New("invalid timeout")
	ErrWriteOutput    = errors.New("failed to write output")
)

// runGenerate orchestrates one generate invocation: config, providers,
// document production, and output.
func runGenerate(ctx context.Context, flags *generateFlags, env *Environment) error {
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		loaded, err := config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	cfg.ApplyEnv(env.Getenv)

	req, err := buildRequest(flags)
	if err != nil {
		return err
	}

	logger := buildLogger(flags.common.verbose)
	defer func() { _ = logger.Sync() }()

	opts := []contentpack.Option{
		contentpack.WithBrand(buildBrand(cfg, flags)),
		contentpack.WithLogger(logger),
	}

	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %q", ErrInvalidTimeout, flags.timeout)
		}
		opts = append(opts, contentpack.WithTimeout(d))
	}

	assetPath := flags.assetPath
	if assetPath == "" {
		assetPath = cfg.Assets.BasePath
	}
	if assetPath != "" {
		opts = append(opts, contentpack.WithAssetLoader(assets.NewFilesystemLoader(assetPath)))
	}

	if !flags.offline {
		if src := buildSource(ctx, cfg, env, logger); src != nil {
			opts = append(opts, contentpack.WithProviders(src))
		} else if !flags.common.quiet {
			fmt.Fprintln(env.Stderr, "No providers available; using built-in content.")
		}
	}

	svc := contentpack.New(opts...)
	defer func() { _ = svc.Close() }()

	doc, err := svc.ProduceDocument(ctx, req)
	if err != nil {
		return err
	}

	outDir := flags.output
	if outDir == "" {
		outDir = cfg.Output.Dir
	}
	path, err := svc.WriteDocument(doc, outDir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s (source: %s, engine: %s)\n", path, doc.Source, doc.Engine)
	}
	return nil
}

// buildRequest converts flags into a generation request.
func buildRequest(flags *generateFlags) (contentpack.Request, error) {
	req := contentpack.Request{
		Topic:     strings.TrimSpace(flags.content.topic),
		Audience:  flags.content.audience,
		Tone:      flags.content.tone,
		Style:     flags.content.style,
		Length:    strings.ToLower(flags.content.length),
		Platforms: flags.content.platforms,
		Hashtags:  flags.content.hashtags,
	}

	switch req.Length {
	case "", contentpack.LengthShort, contentpack.LengthMedium, contentpack.LengthLong:
	default:
		return contentpack.Request{}, fmt.Errorf("%w: %q", ErrInvalidLength, flags.content.length)
	}
	if err := req.Validate(); err != nil {
		return contentpack.Request{}, err
	}
	return req, nil
}

// buildBrand layers config branding over the defaults, then CLI flags over
// both (CLI wins).
func buildBrand(cfg *config.Config, flags *generateFlags) contentpack.BrandConfig {
	brand := contentpack.DefaultBrand()

	if cfg.Brand.BrandName != "" {
		brand.BrandName = cfg.Brand.BrandName
	}
	if cfg.Brand.Website != "" {
		brand.Website = cfg.Brand.Website
	}
	if cfg.Brand.LogoPath != "" {
		brand.LogoPath = cfg.Brand.LogoPath
	}
	if cfg.Brand.FooterText != "" {
		brand.FooterText = cfg.Brand.FooterText
	}
	if cfg.Brand.CompanyName != "" {
		brand.CompanyName = cfg.Brand.CompanyName
	}
	// An all-zero color means "not set"; pure black is not a plausible brand
	// accent, so it never shadows the default.
	if c := cfg.Brand.PrimaryColor; c.R != 0 || c.G != 0 || c.B != 0 {
		brand.PrimaryColor = contentpack.RGB{R: c.R, G: c.G, B: c.B}
	}

	if flags.brand.name != "" {
		brand.BrandName = flags.brand.name
	}
	if flags.brand.site != "" {
		brand.Website = flags.brand.site
	}
	if flags.brand.logo != "" {
		brand.LogoPath = flags.brand.logo
	}
	if flags.brand.footer != "" {
		brand.FooterText = flags.brand.footer
	}
	return brand
}

// buildSource assembles the provider chain from the configured order and
// the API keys present in the environment. Returns nil when no provider
// can be constructed; the service then runs offline.
func buildSource(ctx context.Context, cfg *config.Config, env *Environment, logger *zap.Logger) contentpack.ContentSource {
	var providers []contentpack.ContentProvider

	for _, name := range cfg.Providers.Order {
		var (
			p   contentpack.ContentProvider
			err error
		)
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "gemini":
			key := env.Getenv("GEMINI_API_KEY")
			if key == "" {
				logger.Debug("provider skipped, no API key", zap.String("provider", "gemini"))
				continue
			}
			p, err = contentpack.NewGeminiProvider(ctx, key, cfg.Providers.GeminiModel)
		case "openrouter":
			key := env.Getenv("OPENROUTER_API_KEY")
			if key == "" {
				logger.Debug("provider skipped, no API key", zap.String("provider", "openrouter"))
				continue
			}
			p, err = contentpack.NewOpenRouterProvider(key, cfg.Providers.OpenRouterModel)
		case "openai":
			key := env.Getenv("OPENAI_API_KEY")
			if key == "" {
				logger.Debug("provider skipped, no API key", zap.String("provider", "openai"))
				continue
			}
			p, err = contentpack.NewOpenAIProvider(key, cfg.Providers.OpenAIModel)
		case "local":
			p, err = contentpack.NewLocalProvider(cfg.Providers.LocalBaseURL, cfg.Providers.LocalModel)
		default:
			logger.Warn("unknown provider in config order", zap.String("provider", name))
			continue
		}
		if err != nil {
			logger.Warn("provider unavailable", zap.String("provider", name), zap.Error(err))
			continue
		}
		providers = append(providers, p)
	}

	if len(providers) == 0 {
		return nil
	}
	return contentpack.NewProviderRouter(logger, providers...)
}

// buildLogger returns a development logger in verbose mode and a no-op
// logger otherwise; normal CLI output goes through env.Stdout instead.
func buildLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
