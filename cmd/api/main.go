package main

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/urielfortunato123-del/verdade-legal-br/db"
	"github.com/urielfortunato123-del/verdade-legal-br/internal/feed"
	"github.com/urielfortunato123-del/verdade-legal-br/internal/handler"
	"github.com/urielfortunato123-del/verdade-legal-br/internal/queue"
	"github.com/urielfortunato123-del/verdade-legal-br/internal/repository"
	"github.com/urielfortunato123-del/verdade-legal-br/pkg/llm"
	"github.com/urielfortunato123-del/verdade-legal-br/pkg/webpage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	gateway := newGateway()

	var store handler.VerificationStore
	if err := db.Connect(); err != nil {
		slog.Warn("database unavailable, verification history disabled", "error", err)
	} else {
		defer db.Close()
		store = repository.NewVerificationRepository(db.DB)
	}

	var archive handler.Archiver
	if err := db.ConnectRedis(); err != nil {
		slog.Warn("redis unavailable, analysis archiving disabled", "error", err)
	} else {
		defer db.CloseRedis()
		archive = queue.NewVerificationQueue()
	}

	aggregator := feed.NewAggregator(feed.NewFetcher(), feed.Feeds)

	newsHandler := handler.NewNewsHandler(aggregator)
	verifyHandler := handler.NewVerifyHandler(gateway, archive)
	checkHandler := handler.NewCheckHandler(gateway, webpage.FetchText)
	transcribeHandler := handler.NewTranscribeHandler(gateway)
	historyHandler := handler.NewHistoryHandler(store)

	router := gin.Default()
	router.Use(cors.New(corsConfig()))

	router.GET("/health", historyHandler.GetHealth)
	router.GET("/verifications", historyHandler.GetVerifications)
	router.POST("/fetch-news", newsHandler.FetchNews)
	router.POST("/verify-news", verifyHandler.VerifyNews)
	router.POST("/analyze-news", verifyHandler.AnalyzeNews)
	router.POST("/fact-check", checkHandler.FactCheck)
	router.POST("/analyze-document", checkHandler.AnalyzeDocument)
	router.POST("/analyze-question", checkHandler.AnalyzeQuestion)
	router.POST("/transcribe-audio", transcribeHandler.Transcribe)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	slog.Info("starting API server", "port", port)
	if err := router.Run(":" + port); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func corsConfig() cors.Config {
	cfg := cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}
	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		cfg.AllowAllOrigins = false
		cfg.AllowOrigins = []string{frontend}
	}
	return cfg
}

// newGateway picks the AI provider from the environment. LLM_PROVIDER forces
// the choice; otherwise OpenRouter wins when both keys are set. A nil gateway
// makes the AI endpoints answer 500.
func newGateway() llm.Gateway {
	provider := os.Getenv("LLM_PROVIDER")

	if provider != "anthropic" {
		if key := os.Getenv("OPENROUTER_API_KEY"); key != "" {
			slog.Info("using OpenRouter gateway")
			return llm.NewOpenRouterGateway(key)
		}
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		slog.Info("using Anthropic gateway")
		return llm.NewAnthropicGateway(key)
	}

	slog.Warn("no AI provider key set, verification endpoints disabled")
	return nil
}
