package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client is an abstraction over LLM providers
type Client interface {
	// GenerateContent generates text content using the specified model tier
	GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GenerateJSON generates JSON content using the specified model tier
	GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GetModel returns the underlying provider model for a tier
	GetModel(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	return NewGeminiClient(ctx, config, apiKey)
}

// outputMode selects between free text and enforced JSON responses.
type outputMode int

const (
	modeText outputMode = iota
	modeJSON
)

// GeminiClient implements Client for Google Gemini. Generative models are
// configured once per (tier, mode) pair and reused across calls.
type GeminiClient struct {
	api    *genai.Client
	config *Config

	mu     sync.Mutex
	models map[ModelTier][2]*genai.GenerativeModel
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	api, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		api:    api,
		config: config,
		models: make(map[ModelTier][2]*genai.GenerativeModel),
	}, nil
}

// model returns the cached generative model for a tier and output mode,
// building and configuring it on first use.
func (c *GeminiClient) model(tier ModelTier, mode outputMode) (*genai.GenerativeModel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if pair, ok := c.models[tier]; ok && pair[mode] != nil {
		return pair[mode], nil
	}

	name := c.config.GetModel(tier)
	if name == "" {
		return nil, fmt.Errorf("no model configured for tier %s", tier)
	}

	m := c.api.GenerativeModel(name)
	m.SetTemperature(0) // Deterministic output for repeatable runs
	if mode == modeJSON {
		m.ResponseMIMEType = "application/json"
	}

	pair := c.models[tier]
	pair[mode] = m
	c.models[tier] = pair
	return m, nil
}

func (c *GeminiClient) generate(ctx context.Context, prompt string, tier ModelTier, mode outputMode) (string, error) {
	m, err := c.model(tier, mode)
	if err != nil {
		return "", err
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return firstCandidateText(resp)
}

// GenerateContent generates text content using the specified model tier
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.generate(ctx, prompt, tier, modeText)
}

// GenerateJSON generates JSON content using the specified model tier
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	text, err := c.generate(ctx, prompt, tier, modeJSON)
	if err != nil {
		return "", err
	}
	// The JSON MIME type usually prevents fencing, but not reliably
	return CleanJSONBlock(text), nil
}

// GetModel returns the model name for a tier
func (c *GeminiClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.api != nil {
		return c.api.Close()
	}
	return nil
}

// firstCandidateText concatenates the text parts of the first response
// candidate.
func firstCandidateText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	content := resp.Candidates[0].Content
	if content == nil {
		return "", fmt.Errorf("no content in response")
	}

	var sb strings.Builder
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return sb.String(), nil
}
