package application

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"math"
	"strings"

	configdomain "room-designer/backend/internal/features/config/domain"
	"room-designer/backend/internal/features/design/domain"
	"room-designer/backend/internal/features/design/infrastructure"
)

// LayoutRenderer draws the furniture layout of a room as a PNG image.
type LayoutRenderer interface {
	Render(ctx context.Context, length, breadth float64, items []string) ([]byte, error)
}

// DesignService defines the interface for the design application service.
type DesignService interface {
	GenerateSuggestions(ctx context.Context, req *domain.DesignRequest, prompts *configdomain.AppConfig) (string, error)
	RenderLayout(ctx context.Context, req *domain.DesignRequest) (string, error)
	CreateDesign(ctx context.Context, req *domain.DesignRequest, prompts *configdomain.AppConfig) (*domain.SuggestionResponse, error)
}

// designService is the implementation of DesignService.
type designService struct {
	chatClient infrastructure.ChatClient
	renderer   LayoutRenderer
}

// NewDesignService creates a new instance of designService.
func NewDesignService(chatClient infrastructure.ChatClient, renderer LayoutRenderer) DesignService {
	return &designService{chatClient: chatClient, renderer: renderer}
}

// BuildMessages composes the system and user turns sent to the chat service.
func BuildMessages(req *domain.DesignRequest, prompts *configdomain.AppConfig) []infrastructure.Message {
	if prompts == nil {
		prompts = configdomain.DefaultAppConfig()
	}

	userPrompt := fmt.Sprintf(
		"Room dimensions: %sm x %sm\nAesthetic: %s\nFurnitures: %s\nUser prompt: %s\n\n%s",
		formatMeters(req.Length),
		formatMeters(req.Breadth),
		req.Aesthetic,
		req.Furniture,
		req.Prompt,
		prompts.FormatDirective,
	)

	return []infrastructure.Message{
		{Role: infrastructure.RoleSystem, Content: prompts.SystemPrompt},
		{Role: infrastructure.RoleUser, Content: userPrompt},
	}
}

// formatMeters prints whole numbers with one decimal ("4.0") and keeps
// any other value, including very large ones, in shortest form.
func formatMeters(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e16 {
		return fmt.Sprintf("%.1f", v)
	}
	return fmt.Sprintf("%g", v)
}

// GenerateSuggestions asks the chat service for design advice. A reply
// without usable content yields the fallback text; only a failed call is an error.
func (s *designService) GenerateSuggestions(ctx context.Context, req *domain.DesignRequest, prompts *configdomain.AppConfig) (string, error) {
	messages := BuildMessages(req, prompts)

	var opts infrastructure.ChatOptions
	if prompts != nil {
		opts = infrastructure.ChatOptions{
			Model:       prompts.ModelParams.Model,
			Temperature: float32(prompts.ModelParams.Temperature),
			MaxTokens:   prompts.ModelParams.MaxTokens,
		}
	}

	reply, err := s.chatClient.Chat(ctx, messages, opts)
	if err != nil {
		return "", fmt.Errorf("generate suggestions: %w", err)
	}

	switch reply.Status {
	case infrastructure.ReplyOK:
		if text := strings.TrimSpace(reply.Content); text != "" {
			return text, nil
		}
		log.Println("[DEBUG] chat reply had empty content, using fallback")
	case infrastructure.ReplyMalformed:
		log.Println("[DEBUG] chat reply was malformed, using fallback")
	default:
		log.Printf("[DEBUG] unexpected chat reply status %s, using fallback\n", reply.Status)
	}
	return domain.FallbackSuggestion, nil
}

// RenderLayout draws the room's furniture layout and returns it base64 encoded.
func (s *designService) RenderLayout(ctx context.Context, req *domain.DesignRequest) (string, error) {
	items := domain.ParseFurniture(req.Furniture)

	img, err := s.renderer.Render(ctx, req.Length, req.Breadth, items)
	if err != nil {
		return "", fmt.Errorf("render layout: %w", err)
	}
	return base64.StdEncoding.EncodeToString(img), nil
}

// CreateDesign runs suggestion generation and then layout rendering.
// Either failure aborts the whole design.
func (s *designService) CreateDesign(ctx context.Context, req *domain.DesignRequest, prompts *configdomain.AppConfig) (*domain.SuggestionResponse, error) {
	suggestions, err := s.GenerateSuggestions(ctx, req, prompts)
	if err != nil {
		return nil, err
	}

	plot, err := s.RenderLayout(ctx, req)
	if err != nil {
		return nil, err
	}

	return domain.NewSuggestionResponse(suggestions, plot), nil
}
