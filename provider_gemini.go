package contentpack

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// geminiProvider implements ContentProvider using the Gemini API.
type geminiProvider struct {
	client *genai.Client
	model  string
}

// Compile-time interface check.
var _ ContentProvider = (*geminiProvider)(nil)

// NewGeminiProvider creates a Gemini-backed provider.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (ContentProvider, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		return nil, ErrMissingModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) Name() string { return "gemini" }

// Generate asks Gemini for a content pack.
func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		return "", quotaWrap("gemini", err)
	}
	text := resp.Text()
	if text == "" {
		return "", ErrProviderEmpty
	}
	return text, nil
}
