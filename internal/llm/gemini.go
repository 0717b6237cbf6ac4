package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	geminiTextTemperature = 0.4
	geminiJSONTemperature = 0.1
)

var errEmptyGeminiAnswer = errors.New("gemini returned no text")

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	sdk *genai.Client
	cfg *Config
}

// NewGeminiClient connects to Gemini with apiKey.
func NewGeminiClient(ctx context.Context, cfg *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	sdk, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	return &GeminiClient{sdk: sdk, cfg: cfg}, nil
}

// GenerateContent implements Client.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.generate(ctx, prompt, tier, false)
}

// GenerateJSON implements Client. The answer is stripped of code fences.
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	answer, err := c.generate(ctx, prompt, tier, true)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(answer), nil
}

func (c *GeminiClient) generate(ctx context.Context, prompt string, tier ModelTier, jsonMode bool) (string, error) {
	name, err := modelFor(c.cfg, tier)
	if err != nil {
		return "", err
	}

	m := c.sdk.GenerativeModel(name)
	if jsonMode {
		m.SetTemperature(geminiJSONTemperature)
		m.ResponseMIMEType = "application/json"
	} else {
		m.SetTemperature(geminiTextTemperature)
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w", name, err)
	}
	return joinParts(resp)
}

// GetModel implements Client.
func (c *GeminiClient) GetModel(tier ModelTier) string {
	return c.cfg.GetModel(tier)
}

// Close implements Client.
func (c *GeminiClient) Close() error {
	if c.sdk == nil {
		return nil
	}
	return c.sdk.Close()
}

// joinParts concatenates the text parts of the first candidate.
func joinParts(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errEmptyGeminiAnswer
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	if sb.Len() == 0 {
		return "", errEmptyGeminiAnswer
	}
	return sb.String(), nil
}
