// README: Provider for OpenAI-compatible chat-completions gateways.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// GatewayProvider implements Provider against any gateway speaking the
// chat-completions wire format. Which gateway (and which upstream model)
// is purely configuration; nothing outside this file knows the shape of
// the HTTP exchange.
type GatewayProvider struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	model      string
}

// NewGatewayProvider builds a provider for the given chat-completions
// endpoint. timeout bounds the whole HTTP exchange so a hung gateway cannot
// stall a pipeline run indefinitely.
func NewGatewayProvider(endpoint, apiKey, model string, timeout time.Duration) (*GatewayProvider, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("gateway: missing endpoint")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("gateway: missing api key")
	}
	return &GatewayProvider{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		apiKey:     apiKey,
		model:      model,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate performs exactly one chat-completions call and normalizes the
// outcome: 429 and 402 become their dedicated sentinels, any other non-2xx
// is a transport failure, and a 2xx without message content is a contract
// violation. No retries here; retry policy belongs to the caller.
func (p *GatewayProvider) Generate(ctx context.Context, req Request) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("gateway: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gateway: build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		// err may embed the request URL but never the Authorization header.
		return "", fmt.Errorf("%w: gateway request failed: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		return "", ErrQuotaExhausted
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", fmt.Errorf("%w: gateway status %d", ErrTransport, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: gateway read response: %v", ErrTransport, err)
	}

	var decoded chatResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	if len(decoded.Choices) == 0 || decoded.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: no message content in choices", ErrMalformedEnvelope)
	}
	return decoded.Choices[0].Message.Content, nil
}
