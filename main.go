package main

import (
	"log"

	"room-designer/backend/internal/config"
	configapp "room-designer/backend/internal/features/config/application"
	designapp "room-designer/backend/internal/features/design/application"
	"room-designer/backend/internal/features/design/infrastructure"
	"room-designer/backend/internal/server"

	_ "go.uber.org/automaxprocs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	baseURL := cfg.Chat.OllamaURL
	if cfg.Chat.Provider == infrastructure.ProviderOpenAI {
		baseURL = cfg.Chat.OpenAIBaseURL
	}

	// Initialize chat client
	chatClient, err := infrastructure.NewChatClient(infrastructure.AIConfig{
		Provider: cfg.Chat.Provider,
		APIKey:   cfg.Chat.OpenAIAPIKey,
		BaseURL:  baseURL,
		Model:    cfg.Chat.Model,
		Timeout:  cfg.Chat.Timeout,
	})
	if err != nil {
		log.Fatalf("Failed to create chat client: %v", err)
	}
	log.Printf("chat client ready: %s (model %s)", chatClient.Provider(), cfg.Chat.Model)

	// Initialize services
	renderer := infrastructure.NewPlotRenderer(infrastructure.PlotOptions{
		InchesPerMeter: cfg.Plot.InchesPerMeter,
		MaxInches:      cfg.Plot.MaxInches,
		DPI:            cfg.Plot.DPI,
	})
	designService := designapp.NewDesignService(chatClient, renderer)
	configService := configapp.NewConfigService(config.NewAppConfigService(cfg.App.ConfigPath))

	r := server.BuildRouter(server.RouterDeps{
		ServiceName:   cfg.App.ServiceName,
		Version:       cfg.App.Version,
		ChatProvider:  chatClient.Provider(),
		Server:        cfg.Server,
		DesignService: designService,
		ConfigService: configService,
	})

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
