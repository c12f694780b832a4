package provider

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
)

const (
	geminiName      = "gemini"
	geminiModelName = "gemini-1.5-flash-latest"
)

// GeminiClient wraps the GenAI SDK. An empty API key yields a client whose
// Generate always reports ErrNotConfigured, so the service can still boot
// without the credential and rely on the fallback path.
type GeminiClient struct {
	client  *genai.Client
	limiter *rate.Limiter
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	c := &GeminiClient{limiter: rate.NewLimiter(rate.Every(time.Second), 5)}
	if apiKey == "" {
		return c, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	c.client = client
	return c, nil
}

func (c *GeminiClient) Name() string { return geminiName }

func (c *GeminiClient) Close() {
	if c.client != nil {
		if err := c.client.Close(); err != nil {
			log.Printf("Error closing GenAI client: %v", err)
		}
	}
}

// Generate performs a single content-generation call against Gemini.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("gemini: %w", ErrNotConfigured)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("gemini rate limit wait: %w: %v", ErrUpstream, err)
	}

	model := c.client.GenerativeModel(geminiModelName)

	temp := float32(0.7)
	topK := int32(40)
	topP := float32(0.95)
	maxTokens := int32(1024)
	model.GenerationConfig = genai.GenerationConfig{
		Temperature:     &temp,
		TopK:            &topK,
		TopP:            &topP,
		MaxOutputTokens: &maxTokens,
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w: %v", ErrUpstream, err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: %w", ErrMalformedResponse)
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		} else {
			log.Printf("Gemini response part was not text: %T", part)
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", fmt.Errorf("gemini: %w", ErrMalformedResponse)
	}

	return text.String(), nil
}
