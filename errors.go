package contentpack

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyTopic     = errors.New("request topic cannot be empty")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrDocumentRender = errors.New("document template rendering failed")

	// Provider errors.
	ErrQuotaExhausted = errors.New("provider quota exhausted")
	ErrProviderEmpty  = errors.New("provider returned empty output")
	ErrNoProvider     = errors.New("no provider produced content")
	ErrMissingAPIKey  = errors.New("provider API key missing")
	ErrMissingModel   = errors.New("provider model missing")

	// Brand validation errors.
	ErrInvalidColor = errors.New("invalid primary color component")
	ErrMissingBrand = errors.New("brand name cannot be empty")

	// Font loading errors.
	ErrFontCorrupt = errors.New("font file too small to be valid")
)
