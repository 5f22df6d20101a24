package contentpack

import (
	"context"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// openRouterBaseURL is the OpenAI-compatible endpoint for OpenRouter.
const openRouterBaseURL = "https://openrouter.ai/api/v1"

// systemPrompt frames every chat completion request.
const systemPrompt = "You are a marketing content generator. Respond with JSON only."

// openAIProvider implements ContentProvider for any OpenAI-compatible chat
// completions endpoint (OpenAI, OpenRouter, local gateways).
type openAIProvider struct {
	name  string
	model string
	opts  []option.RequestOption
}

// Compile-time interface check.
var _ ContentProvider = (*openAIProvider)(nil)

// NewOpenAIProvider targets the hosted OpenAI API.
func NewOpenAIProvider(apiKey, model string) (ContentProvider, error) {
	return newOpenAICompatible("openai", apiKey, model, "")
}

// NewOpenRouterProvider targets OpenRouter's OpenAI-compatible API.
func NewOpenRouterProvider(apiKey, model string) (ContentProvider, error) {
	return newOpenAICompatible("openrouter", apiKey, model, openRouterBaseURL)
}

// NewLocalProvider targets a local OpenAI-compatible gateway (Ollama,
// llama.cpp server). Local gateways typically ignore the API key, so any
// non-empty placeholder works.
func NewLocalProvider(baseURL, model string) (ContentProvider, error) {
	return newOpenAICompatible("local", "local", model, baseURL)
}

func newOpenAICompatible(name, apiKey, model, baseURL string) (*openAIProvider, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		return nil, ErrMissingModel
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &openAIProvider{name: name, model: model, opts: opts}, nil
}

func (p *openAIProvider) Name() string { return p.name }

// Generate asks the chat completions endpoint for a content pack.
func (p *openAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	client := openai.NewClient(p.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", quotaWrap(p.name, err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrProviderEmpty
	}
	return resp.Choices[0].Message.Content, nil
}
