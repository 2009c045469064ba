package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Message represents a message in a chat exchange
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ReplyStatus tells whether a chat reply carried the expected message content.
type ReplyStatus int

const (
	// ReplyOK means the reply held a message content field (possibly blank).
	ReplyOK ReplyStatus = iota
	// ReplyMalformed means the service answered but without message content.
	ReplyMalformed
)

func (s ReplyStatus) String() string {
	switch s {
	case ReplyOK:
		return "ok"
	case ReplyMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("ReplyStatus(%d)", int(s))
	}
}

// ChatReply is the outcome of a chat call that reached the service.
// Service failures are reported through the error return instead.
type ChatReply struct {
	Status  ReplyStatus
	Content string
}

// OK builds a reply holding content.
func OK(content string) ChatReply {
	return ChatReply{Status: ReplyOK, Content: content}
}

// Malformed builds a reply without usable structure.
func Malformed() ChatReply {
	return ChatReply{Status: ReplyMalformed}
}

// ChatOptions tunes a single call. Zero values leave the client defaults in place.
type ChatOptions struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// ErrEmptyMessages is returned when a chat call has nothing to send.
var ErrEmptyMessages = errors.New("chat: no messages to send")

// ChatClient defines a generic interface for chat completion services
type ChatClient interface {
	// Chat sends the ordered messages and returns the service reply.
	Chat(ctx context.Context, messages []Message, opts ChatOptions) (ChatReply, error)

	// Provider names the backing service, e.g. "ollama" or "openai".
	Provider() string
}

const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"

	DefaultModel     = "llama2"
	DefaultOllamaURL = "http://localhost:11434"
)

// AIConfig holds configuration for chat clients
type AIConfig struct {
	Provider string        `json:"provider"` // "ollama", "openai"
	APIKey   string        `json:"api_key"`
	BaseURL  string        `json:"base_url"`
	Model    string        `json:"model"`
	Timeout  time.Duration `json:"timeout"`
}

// NewChatClient creates a chat client based on configuration.
func NewChatClient(cfg AIConfig) (ChatClient, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", ProviderOllama:
		return NewOllamaClient(cfg.BaseURL, cfg.Model, cfg.Timeout), nil
	case ProviderOpenAI:
		return NewOpenAIClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported chat provider %q", cfg.Provider)
	}
}
