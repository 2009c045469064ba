package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the process level settings read from the environment.
type Config struct {
	Server ServerConfig
	Chat   ChatConfig
	Plot   PlotConfig
	App    AppConfig
}

type ServerConfig struct {
	Port         string
	AllowOrigins []string
}

type ChatConfig struct {
	Provider      string
	Model         string
	OllamaURL     string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	Timeout       time.Duration
}

type PlotConfig struct {
	InchesPerMeter float64
	MaxInches      float64
	DPI            int
}

type AppConfig struct {
	ServiceName string
	Version     string
	ConfigPath  string
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			AllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		},
		Chat: ChatConfig{
			Provider:      strings.ToLower(getEnv("CHAT_PROVIDER", "ollama")),
			Model:         getEnv("CHAT_MODEL", "llama2"),
			OllamaURL:     getEnv("OLLAMA_URL", "http://localhost:11434"),
			OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
			OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
			Timeout:       getEnvAsDuration("CHAT_TIMEOUT", 0),
		},
		Plot: PlotConfig{
			InchesPerMeter: getEnvAsFloat("PLOT_INCHES_PER_METER", 1),
			MaxInches:      getEnvAsFloat("PLOT_MAX_INCHES", 40),
			DPI:            getEnvAsInt("PLOT_DPI", 96),
		},
		App: AppConfig{
			ServiceName: getEnv("SERVICE_NAME", "room-designer"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			ConfigPath:  getEnv("APP_CONFIG_PATH", "config/app_config.json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Chat.Provider {
	case "ollama":
	case "openai":
		if c.Chat.OpenAIAPIKey == "" && c.Chat.OpenAIBaseURL == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when CHAT_PROVIDER=openai")
		}
	default:
		return fmt.Errorf("CHAT_PROVIDER must be ollama or openai, got %q", c.Chat.Provider)
	}

	if len(c.Server.AllowOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOW_ORIGINS must list at least one origin")
	}
	for _, o := range c.Server.AllowOrigins {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("CORS_ALLOW_ORIGINS entry %q must be * or start with http:// or https://", o)
		}
	}

	if c.Plot.InchesPerMeter <= 0 || c.Plot.MaxInches <= 0 || c.Plot.DPI <= 0 {
		return fmt.Errorf("PLOT_INCHES_PER_METER, PLOT_MAX_INCHES and PLOT_DPI must be positive")
	}

	return nil
}

// AllowsAllOrigins reports whether CORS is open to every origin.
func (s ServerConfig) AllowsAllOrigins() bool {
	for _, o := range s.AllowOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
