package domain

import (
	"errors"
	"strings"
)

const (
	DefaultSystemPrompt    = "You are a professional interior designer. Give clear, practical suggestions."
	DefaultFormatDirective = "Provide suggestions that respect these dimensions, aesthetics, and furniture. " +
		"Use bullet points unless the model wants to use numbering."
)

// AppConfig represents the tunable prompt and model configuration.
type AppConfig struct {
	SystemPrompt    string      `json:"system_prompt"`
	FormatDirective string      `json:"format_directive"`
	ModelParams     ModelParams `json:"model_params"`
}

// ModelParams defines the parameters for the AI model.
// Zero values mean "use the chat client's default".
type ModelParams struct {
	Model       string  `json:"model,omitempty"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// DefaultAppConfig returns the built-in configuration.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		SystemPrompt:    DefaultSystemPrompt,
		FormatDirective: DefaultFormatDirective,
	}
}

// ApplyDefaults fills blank prompts with the built-in ones.
func (c *AppConfig) ApplyDefaults() {
	if strings.TrimSpace(c.SystemPrompt) == "" {
		c.SystemPrompt = DefaultSystemPrompt
	}
	if strings.TrimSpace(c.FormatDirective) == "" {
		c.FormatDirective = DefaultFormatDirective
	}
}

// Validate checks the model parameters.
func (c *AppConfig) Validate() error {
	if c.ModelParams.Temperature < 0 || c.ModelParams.Temperature > 2 {
		return errors.New("model_params.temperature must be between 0 and 2")
	}
	if c.ModelParams.MaxTokens < 0 {
		return errors.New("model_params.max_tokens must not be negative")
	}
	return nil
}
