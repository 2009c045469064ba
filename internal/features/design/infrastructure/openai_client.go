package infrastructure

import (
	"context"
	"fmt"
	"log"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// openAIClient talks to any OpenAI compatible Chat Completions endpoint,
// including Ollama's /v1 API when BaseURL points at it.
type openAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client. An API key is required unless
// a custom base URL is configured.
func NewOpenAIClient(cfg AIConfig) (ChatClient, error) {
	if cfg.APIKey == "" && cfg.BaseURL == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		config.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &openAIClient{client: openai.NewClientWithConfig(config), model: model}, nil
}

func (c *openAIClient) Provider() string { return ProviderOpenAI }

// Chat sends the conversation as a single chat completion request.
func (c *openAIClient) Chat(ctx context.Context, messages []Message, opts ChatOptions) (ChatReply, error) {
	if len(messages) == 0 {
		return ChatReply{}, ErrEmptyMessages
	}

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(messages)),
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}
	if opts.Model != "" {
		req.Model = opts.Model
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Printf("[OpenAI] CreateChatCompletion error: %+v\n", err)
		return ChatReply{}, fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return Malformed(), nil
	}
	return OK(resp.Choices[0].Message.Content), nil
}
