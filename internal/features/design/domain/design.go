package domain

import (
	"errors"
	"math"
	"strings"
)

// DesignRequest is the payload accepted by POST /design.
type DesignRequest struct {
	Length    float64 `json:"length"`  // meters
	Breadth   float64 `json:"breadth"` // meters
	Aesthetic string  `json:"aesthetic"`
	Furniture string  `json:"furniture"` // comma separated
	Prompt    string  `json:"prompt"`
}

// SuggestionResponse is returned on success. Both fields are set together;
// on failure the whole response is replaced by an error body.
type SuggestionResponse struct {
	Suggestions *string `json:"suggestions"`
	PlotBase64  *string `json:"plot_base64"`
}

// NewSuggestionResponse builds a fully populated response.
func NewSuggestionResponse(suggestions, plotBase64 string) *SuggestionResponse {
	return &SuggestionResponse{Suggestions: &suggestions, PlotBase64: &plotBase64}
}

// FallbackSuggestion is used when the chat service replies without usable content.
const FallbackSuggestion = "No suggestions generated."

// ErrInvalidDimensions is returned when a room cannot be drawn.
var ErrInvalidDimensions = errors.New("room dimensions must be positive finite numbers")

// ValidateDimensions reports whether length and breadth describe a drawable room.
func ValidateDimensions(length, breadth float64) error {
	for _, v := range []float64{length, breadth} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return ErrInvalidDimensions
		}
	}
	return nil
}

// DefaultFurniture is used when the request lists no furniture.
var DefaultFurniture = []string{"Sofa", "Bed"}

// ParseFurniture splits the comma separated furniture field, trimming each
// entry and dropping empty ones.
func ParseFurniture(text string) []string {
	var items []string
	for _, part := range strings.Split(text, ",") {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return append([]string(nil), DefaultFurniture...)
	}
	return items
}
