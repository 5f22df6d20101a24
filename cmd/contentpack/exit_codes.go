package main

import (
	"errors"
	"os"

	contentpack "github.com/content365/go-contentpack"
	"github.com/content365/go-contentpack/internal/config"
)

// Exit codes for the contentpack CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Document produced
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitRender  = 4 // Browser/render errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Render errors (exit 4)
	if errors.Is(err, contentpack.ErrBrowserConnect) ||
		errors.Is(err, contentpack.ErrPageCreate) ||
		errors.Is(err, contentpack.ErrPageLoad) ||
		errors.Is(err, contentpack.ErrPDFGeneration) ||
		errors.Is(err, contentpack.ErrDocumentRender) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, contentpack.ErrEmptyTopic) ||
		errors.Is(err, contentpack.ErrInvalidColor) ||
		errors.Is(err, contentpack.ErrMissingBrand) ||
		errors.Is(err, contentpack.ErrMissingAPIKey) ||
		errors.Is(err, contentpack.ErrMissingModel) ||
		errors.Is(err, ErrInvalidLength) ||
		errors.Is(err, ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}
