package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	contentpack "github.com/content365/go-contentpack"
	"github.com/content365/go-contentpack/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Render errors (exit 4)
		{"browser connect", contentpack.ErrBrowserConnect, ExitRender},
		{"page create", contentpack.ErrPageCreate, ExitRender},
		{"page load", contentpack.ErrPageLoad, ExitRender},
		{"pdf generation", contentpack.ErrPDFGeneration, ExitRender},
		{"document render", contentpack.ErrDocumentRender, ExitRender},
		{"wrapped browser connect", fmt.Errorf("failed: %w", contentpack.ErrBrowserConnect), ExitRender},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"empty topic", contentpack.ErrEmptyTopic, ExitUsage},
		{"invalid color", contentpack.ErrInvalidColor, ExitUsage},
		{"missing brand", contentpack.ErrMissingBrand, ExitUsage},
		{"missing api key", contentpack.ErrMissingAPIKey, ExitUsage},
		{"missing model", contentpack.ErrMissingModel, ExitUsage},
		{"invalid length", ErrInvalidLength, ExitUsage},
		{"invalid timeout", ErrInvalidTimeout, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
		{"no provider", contentpack.ErrNoProvider, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("exit codes must follow Unix conventions")
	}
	for _, code := range []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO, ExitRender} {
		if code < 0 || code >= 126 {
			t.Errorf("exit code %d outside portable range", code)
		}
	}
}
