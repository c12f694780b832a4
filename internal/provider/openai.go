package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	openAIName       = "openai"
	openAIBaseURL    = "https://api.openai.com/v1"
	openAIModel      = "gpt-4o-mini"
	openAITempr      = 0.7
	openAIMaxTokens  = 1000
	openAISystemRole = "You are a helpful maternal health assistant. Provide warm, evidence-based guidance for mothers."
)

// OpenAIClient talks to the OpenAI chat-completions API over plain HTTP.
type OpenAIClient struct {
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter

	// BaseURL is overridable for tests.
	BaseURL string
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(time.Second), 5),
		BaseURL:    openAIBaseURL,
	}
}

func (c *OpenAIClient) Name() string { return openAIName }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate performs a single chat-completion call. No retries: the caller
// owns the failure policy.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("openai: %w", ErrNotConfigured)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("openai rate limit wait: %w: %v", ErrUpstream, err)
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model: openAIModel,
		Messages: []chatMessage{
			{Role: "system", Content: openAISystemRole},
			{Role: "user", Content: prompt},
		},
		Temperature: openAITempr,
		MaxTokens:   openAIMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("openai build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request: %w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("openai status %d: %w: %s", resp.StatusCode, ErrUpstream, msg)
	}

	var parsed chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("openai decode response: %w: %v", ErrMalformedResponse, err)
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("openai: %w", ErrMalformedResponse)
	}

	return parsed.Choices[0].Message.Content, nil
}
