package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"room-designer/backend/internal/features/config/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "CORS_ALLOW_ORIGINS", "CHAT_PROVIDER", "CHAT_MODEL", "OLLAMA_URL",
		"OPENAI_API_KEY", "OPENAI_BASE_URL", "CHAT_TIMEOUT", "PLOT_INCHES_PER_METER",
		"PLOT_MAX_INCHES", "PLOT_DPI", "SERVICE_NAME", "APP_VERSION", "APP_CONFIG_PATH",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowOrigins)
	assert.True(t, cfg.Server.AllowsAllOrigins())
	assert.Equal(t, "ollama", cfg.Chat.Provider)
	assert.Equal(t, "llama2", cfg.Chat.Model)
	assert.Equal(t, "http://localhost:11434", cfg.Chat.OllamaURL)
	assert.Zero(t, cfg.Chat.Timeout)
	assert.Equal(t, 1.0, cfg.Plot.InchesPerMeter)
	assert.Equal(t, 40.0, cfg.Plot.MaxInches)
	assert.Equal(t, 96, cfg.Plot.DPI)
	assert.Equal(t, "config/app_config.json", cfg.App.ConfigPath)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000, https://rooms.example")
	t.Setenv("CHAT_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("CHAT_TIMEOUT", "45s")
	t.Setenv("PLOT_DPI", "not-a-number")
	t.Setenv("PLOT_INCHES_PER_METER", "0.5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000", "https://rooms.example"}, cfg.Server.AllowOrigins)
	assert.False(t, cfg.Server.AllowsAllOrigins())
	assert.Equal(t, "openai", cfg.Chat.Provider)
	assert.Equal(t, 45*time.Second, cfg.Chat.Timeout)
	assert.Equal(t, 96, cfg.Plot.DPI)
	assert.Equal(t, 0.5, cfg.Plot.InchesPerMeter)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown provider":   {"CHAT_PROVIDER": "claude"},
		"openai without key": {"CHAT_PROVIDER": "openai"},
		"bad origin":         {"CORS_ALLOW_ORIGINS": "localhost:3000"},
		"negative scale":     {"PLOT_MAX_INCHES": "-1"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestAppConfigService_LoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewAppConfigService(filepath.Join(t.TempDir(), "missing.json"))

	cfg, err := svc.LoadAppConfig()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppConfig(), cfg)
}

func TestAppConfigService_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app_config.json")
	svc := NewAppConfigService(path)

	in := &domain.AppConfig{
		SystemPrompt:    "You are a Scandinavian design expert.",
		FormatDirective: "Answer in three bullets.",
		ModelParams:     domain.ModelParams{Model: "llama3", Temperature: 0.2, MaxTokens: 128},
	}
	require.NoError(t, svc.SaveAppConfig(in))

	out, err := svc.LoadAppConfig()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestAppConfigService_BlankPromptsGetDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app_config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"model_params":{"temperature":0.4}}`), 0o644))

	cfg, err := NewAppConfigService(path).LoadAppConfig()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSystemPrompt, cfg.SystemPrompt)
	assert.Equal(t, domain.DefaultFormatDirective, cfg.FormatDirective)
	assert.Equal(t, 0.4, cfg.ModelParams.Temperature)
}

func TestAppConfigService_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app_config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := NewAppConfigService(path).LoadAppConfig()
	assert.Error(t, err)
}
