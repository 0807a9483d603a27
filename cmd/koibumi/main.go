package main

import (
	"log"
	"log/slog"

	"github.com/tyonekura/koibumi/internal/config"
	"github.com/tyonekura/koibumi/internal/db"
	"github.com/tyonekura/koibumi/internal/llm"
	"github.com/tyonekura/koibumi/internal/llm/deepseek"
	"github.com/tyonekura/koibumi/internal/llm/grok"
	"github.com/tyonekura/koibumi/internal/llm/openai"
	"github.com/tyonekura/koibumi/internal/llm/perplexity"
	"github.com/tyonekura/koibumi/internal/logging"
	"github.com/tyonekura/koibumi/internal/service"
	"github.com/tyonekura/koibumi/internal/store"
	"github.com/tyonekura/koibumi/internal/vision"
	claudevision "github.com/tyonekura/koibumi/internal/vision/claude"
	geminivision "github.com/tyonekura/koibumi/internal/vision/gemini"
	"github.com/tyonekura/koibumi/internal/web"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	partnerStore := store.NewPartnerStore(database)
	captureStore := store.NewCaptureStore(database)

	visionModel := newVisionModel(cfg, logger)
	if visionModel == nil {
		return
	}

	cascade := llm.NewCascade(logger,
		grok.NewClient(cfg.GrokAPIKey, cfg.GrokModel),
		deepseek.NewClient(cfg.DeepseekAPIKey, cfg.DeepseekModel),
	)

	suggestions := service.NewSuggestionService(cascade, logger)
	screenshots := service.NewScreenshotService(visionModel, partnerStore, captureStore, logger)
	chatbot := service.NewChatbotService(openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel), logger)
	dateSpots := service.NewDateSpotService(perplexity.NewClient(cfg.PerplexityAPIKey, cfg.PerplexityModel), logger)

	server := web.NewServer(suggestions, screenshots, chatbot, dateSpots, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}

func newVisionModel(cfg *config.Config, logger *slog.Logger) vision.Model {
	switch cfg.VisionBackend {
	case "claude":
		if cfg.ClaudeAPIKey == "" {
			logger.Error("CLAUDE_API_KEY is required when VISION_BACKEND=claude")
			return nil
		}
		logger.Info("using Claude vision backend")
		return claudevision.NewClaudeModel(cfg.ClaudeAPIKey, cfg.ClaudeModel)
	default:
		if cfg.GeminiAPIKey == "" {
			logger.Error("GEMINI_API_KEY is required when VISION_BACKEND=gemini")
			return nil
		}
		logger.Info("using Gemini vision backend", "model", cfg.GeminiModel)
		return geminivision.NewGeminiModel(cfg.GeminiAPIKey, cfg.GeminiModel)
	}
}
