// README: Gemini-backed Provider using Google's official SDK.
package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.0-flash"

// GeminiProvider implements Provider against Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider initializes a Gemini client. apiKey comes from
// process-wide configuration and is never echoed in errors.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &GeminiProvider{client: client}, nil
}

// Close releases the underlying client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// Generate performs a single generation call. The request's system and user
// instructions are combined into one prompt; binding context directly into
// the prompt keeps behavior identical across SDK revisions that handle
// SystemInstruction differently.
func (p *GeminiProvider) Generate(ctx context.Context, req Request) (string, error) {
	// A fresh GenerativeModel per call: generation config fields are plain
	// struct members, so sharing one across concurrent runs would race.
	model := p.client.GenerativeModel(geminiModel)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(req.Temperature)
	model.SetMaxOutputTokens(int32(req.MaxTokens))

	fullPrompt := fmt.Sprintf("%s\n\n%s", req.System, req.User)

	resp, err := model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return "", classifyGeminiError(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: no response candidates", ErrMalformedEnvelope)
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", fmt.Errorf("%w: candidates contain no text parts", ErrMalformedEnvelope)
	}
	return text.String(), nil
}

// classifyGeminiError maps SDK/transport failures onto the normalized
// taxonomy. Only the HTTP status is inspected; response bodies are dropped
// so nothing provider-internal reaches user-facing messages.
func classifyGeminiError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusTooManyRequests:
			return ErrRateLimited
		case http.StatusPaymentRequired:
			return ErrQuotaExhausted
		}
		return fmt.Errorf("%w: gemini status %d", ErrTransport, gerr.Code)
	}
	return fmt.Errorf("%w: gemini generate content: %v", ErrTransport, err)
}
