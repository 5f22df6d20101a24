// Package config loads CLI configuration from YAML files with environment
// overrides for values that change per deployment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/content365/go-contentpack/internal/fileutil"
	"github.com/content365/go-contentpack/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds all configuration for document generation.
type Config struct {
	Brand     BrandConfig     `yaml:"brand"`
	Providers ProvidersConfig `yaml:"providers"`
	Output    OutputConfig    `yaml:"output"`
	Assets    AssetsConfig    `yaml:"assets"`
}

// BrandConfig defines document branding.
type BrandConfig struct {
	BrandName    string   `yaml:"brandName"`
	Website      string   `yaml:"website"`
	LogoPath     string   `yaml:"logoPath"`
	PrimaryColor RGBColor `yaml:"primaryColor"`
	FooterText   string   `yaml:"footerText"`
	CompanyName  string   `yaml:"companyName"`
}

// RGBColor is a color with components in [0, 1].
type RGBColor struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// ProvidersConfig defines the provider chain.
type ProvidersConfig struct {
	Order           []string `yaml:"order"` // e.g. ["gemini", "openrouter", "local"]
	GeminiModel     string   `yaml:"geminiModel"`
	OpenRouterModel string   `yaml:"openrouterModel"`
	OpenAIModel     string   `yaml:"openaiModel"`
	LocalModel      string   `yaml:"localModel"`
	LocalBaseURL    string   `yaml:"localBaseURL"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // default output directory (empty = "output")
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = use embedded assets
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Providers: ProvidersConfig{
			Order:           []string{"gemini", "openrouter", "local"},
			GeminiModel:     "gemini-2.0-flash",
			OpenRouterModel: "openrouter/auto",
			OpenAIModel:     "gpt-4o-mini",
			LocalModel:      "llama3",
			LocalBaseURL:    "http://localhost:11434/v1",
		},
		Output: OutputConfig{Dir: "output"},
	}
}

// ApplyEnv overrides model and endpoint settings from the environment.
// API keys are read directly by the CLI, not stored in config.
func (c *Config) ApplyEnv(getenv func(string) string) {
	overrides := []struct {
		key string
		dst *string
	}{
		{"GEMINI_MODEL", &c.Providers.GeminiModel},
		{"OPENROUTER_MODEL", &c.Providers.OpenRouterModel},
		{"OPENAI_MODEL", &c.Providers.OpenAIModel},
		{"LOCAL_LLM_MODEL", &c.Providers.LocalModel},
		{"LOCAL_LLM_BASE_URL", &c.Providers.LocalBaseURL},
	}
	for _, o := range overrides {
		if v := getenv(o.key); v != "" {
			*o.dst = v
		}
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	cfg := DefaultConfig()
	if err := yamlutil.ReadFileStrict(configPath, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries extensions in order: .yaml, .yml.
// Tries locations in order: current directory, ~/.config/contentpack/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "contentpack", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
