package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if !reflect.DeepEqual(cfg.Providers.Order, []string{"gemini", "openrouter", "local"}) {
		t.Errorf("Order = %v", cfg.Providers.Order)
	}
	if cfg.Providers.GeminiModel == "" || cfg.Providers.LocalBaseURL == "" {
		t.Error("provider defaults must be set")
	}
	if cfg.Output.Dir != "output" {
		t.Errorf("Output.Dir = %q, want output", cfg.Output.Dir)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"GEMINI_MODEL":       "gemini-custom",
		"LOCAL_LLM_BASE_URL": "http://box:8080/v1",
	}
	cfg := DefaultConfig()
	cfg.ApplyEnv(func(k string) string { return env[k] })

	if cfg.Providers.GeminiModel != "gemini-custom" {
		t.Errorf("GeminiModel = %q", cfg.Providers.GeminiModel)
	}
	if cfg.Providers.LocalBaseURL != "http://box:8080/v1" {
		t.Errorf("LocalBaseURL = %q", cfg.Providers.LocalBaseURL)
	}
	// Unset variables leave defaults alone.
	if cfg.Providers.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("OpenAIModel = %q, want default", cfg.Providers.OpenAIModel)
	}
}

func TestLoadConfigFromPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "brand.yaml")
	content := `brand:
  brandName: Acme
  website: acme.test
  primaryColor:
    r: 0.5
    g: 0.25
    b: 1.0
providers:
  order:
    - openai
output:
  dir: docs
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Brand.BrandName != "Acme" {
		t.Errorf("BrandName = %q", cfg.Brand.BrandName)
	}
	if cfg.Brand.PrimaryColor.G != 0.25 {
		t.Errorf("PrimaryColor.G = %v", cfg.Brand.PrimaryColor.G)
	}
	if !reflect.DeepEqual(cfg.Providers.Order, []string{"openai"}) {
		t.Errorf("Order = %v", cfg.Providers.Order)
	}
	if cfg.Output.Dir != "docs" {
		t.Errorf("Output.Dir = %q", cfg.Output.Dir)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Providers.GeminiModel != DefaultConfig().Providers.GeminiModel {
		t.Errorf("GeminiModel = %q, want default", cfg.Providers.GeminiModel)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()
		missing := filepath.Join(t.TempDir(), "nope.yaml")
		if _, err := LoadConfig(missing); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("nonsense: true\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("broken yaml", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "broken.yaml")
		if err := os.WriteFile(path, []byte("brand: [unclosed\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})
}
