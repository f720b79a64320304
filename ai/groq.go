package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"blog-writer/helpers"
)

const (
	systemPrompt = "You are a professional blog writer. Create engaging, informative, and well-structured blog content."
	userPrompt   = "Write a comprehensive blog post about %s. Include an introduction, main points with examples, and a conclusion. Make it around 500-800 words."

	Temperature = 0.7
	MaxTokens   = 1500
)

// ErrNoChoices is returned when the completion response carries no choices.
var ErrNoChoices = errors.New("completion response has no choices")

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type ChatResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int         `json:"index"`
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage Usage `json:"usage"`
}

// Usage is the token accounting block. Groq adds timing fields in seconds.
type Usage struct {
	PromptTokens     int     `json:"prompt_tokens"`
	CompletionTokens int     `json:"completion_tokens"`
	TotalTokens      int     `json:"total_tokens"`
	QueueTime        float64 `json:"queue_time,omitempty"`
	PromptTime       float64 `json:"prompt_time,omitempty"`
	CompletionTime   float64 `json:"completion_time,omitempty"`
	TotalTime        float64 `json:"total_time,omitempty"`
}

type Options struct {
	APIKey     string
	Model      string
	Endpoint   string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client talks to an OpenAI-compatible chat completions endpoint (Groq by default).
type Client struct {
	endpoint string
	model    string
	http     *http.Client
	logger   *slog.Logger
}

func NewClient(opts Options) (*Client, error) {
	if opts.APIKey == "" {
		return nil, errors.New("ai: missing API key")
	}
	if opts.Model == "" {
		return nil, errors.New("ai: missing model")
	}
	if opts.Endpoint == "" {
		return nil, errors.New("ai: missing endpoint")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		endpoint: opts.Endpoint,
		model:    opts.Model,
		http:     helpers.BearerClient(opts.HTTPClient, opts.APIKey),
		logger:   logger,
	}, nil
}

// WriteBlog asks for a 500-800 word post about topic and returns the text of
// the first choice.
func (c *Client) WriteBlog(ctx context.Context, topic string) (string, error) {
	reqBody := ChatRequest{
		Model: c.model,
		Messages: []ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(userPrompt, topic)},
		},
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	}

	headers := map[string]string{"Content-Type": "application/json"}
	chatResp, err := helpers.MakeHTTPRequest[ChatResponse](ctx, c.http, c.logger, http.MethodPost, c.endpoint, headers, reqBody)
	if err != nil {
		c.logger.Error("Failed to generate blog content", "topic", topic, "error", err)
		return "", err
	}

	if len(chatResp.Choices) == 0 {
		c.logger.Error("No choices found in response", "topic", topic, "id", chatResp.ID)
		return "", ErrNoChoices
	}

	c.logger.Info("AI Response", "topic", topic, "model", chatResp.Model, "total_tokens", chatResp.Usage.TotalTokens, "total_time", chatResp.Usage.TotalTime)
	return chatResp.Choices[0].Message.Content, nil
}
