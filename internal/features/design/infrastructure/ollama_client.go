package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// ollamaClient calls the native Ollama chat API (POST /api/chat).
type ollamaClient struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewOllamaClient creates a client for the Ollama server at baseURL.
// A zero timeout leaves the request unbounded.
func NewOllamaClient(baseURL, model string, timeout time.Duration) ChatClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultOllamaURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &ollamaClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *ollamaClient) Provider() string { return ProviderOllama }

type ollamaOptions struct {
	Temperature float32 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaChatRequest struct {
	Model    string         `json:"model"`
	Messages []Message      `json:"messages"`
	Stream   bool           `json:"stream"`
	Options  *ollamaOptions `json:"options,omitempty"`
}

type ollamaChatResponse struct {
	Message *struct {
		Role    string  `json:"role"`
		Content *string `json:"content"`
	} `json:"message"`
}

// Chat sends a non-streaming chat request and maps the reply shape.
func (c *ollamaClient) Chat(ctx context.Context, messages []Message, opts ChatOptions) (ChatReply, error) {
	if len(messages) == 0 {
		return ChatReply{}, ErrEmptyMessages
	}

	payload := ollamaChatRequest{Model: c.model, Messages: messages}
	if opts.Model != "" {
		payload.Model = opts.Model
	}
	if opts.Temperature != 0 || opts.MaxTokens != 0 {
		payload.Options = &ollamaOptions{Temperature: opts.Temperature, NumPredict: opts.MaxTokens}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return ChatReply{}, fmt.Errorf("marshal ollama payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return ChatReply{}, fmt.Errorf("ollama request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("[Ollama] chat request error: %v\n", err)
		return ChatReply{}, fmt.Errorf("ollama perform request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return ChatReply{}, fmt.Errorf("ollama read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		var failure struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(raw, &failure)
		if failure.Error == "" {
			failure.Error = strings.TrimSpace(string(raw))
		}
		return ChatReply{}, fmt.Errorf("ollama status %d: %s", resp.StatusCode, failure.Error)
	}

	var completion ollamaChatResponse
	if err := json.Unmarshal(raw, &completion); err != nil {
		return ChatReply{}, fmt.Errorf("ollama decode response: %w", err)
	}

	if completion.Message == nil || completion.Message.Content == nil {
		return Malformed(), nil
	}
	return OK(*completion.Message.Content), nil
}
