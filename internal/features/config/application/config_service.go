package application

import (
	"errors"
	"fmt"

	"room-designer/backend/internal/config"
	"room-designer/backend/internal/features/config/domain"
)

// ErrInvalidConfig marks configuration rejected by validation.
var ErrInvalidConfig = errors.New("invalid app config")

// ConfigService defines the interface for prompt/model config management.
type ConfigService interface {
	GetConfig() (*domain.AppConfig, error)
	UpdateConfig(config *domain.AppConfig) (*domain.AppConfig, error)
}

// configService is the implementation of ConfigService.
type configService struct {
	store config.AppConfigService
}

// NewConfigService creates a new instance of configService.
func NewConfigService(store config.AppConfigService) ConfigService {
	return &configService{store: store}
}

// GetConfig returns the stored configuration, or the defaults.
func (s *configService) GetConfig() (*domain.AppConfig, error) {
	return s.store.LoadAppConfig()
}

// UpdateConfig validates and persists the configuration. Blank prompts are
// replaced by the built-in ones before saving.
func (s *configService) UpdateConfig(cfg *domain.AppConfig) (*domain.AppConfig, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.ApplyDefaults()

	if err := s.store.SaveAppConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
