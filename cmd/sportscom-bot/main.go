package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Guten-Morgen1302/sportscom-chatbot/internal/bot"
	"github.com/Guten-Morgen1302/sportscom-chatbot/internal/config"
	"github.com/Guten-Morgen1302/sportscom-chatbot/internal/corpus"
	"github.com/Guten-Morgen1302/sportscom-chatbot/internal/domain"
	"github.com/Guten-Morgen1302/sportscom-chatbot/internal/gemini"
	"github.com/Guten-Morgen1302/sportscom-chatbot/internal/retrieval"
	"github.com/Guten-Morgen1302/sportscom-chatbot/internal/server"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "config.yaml", "Path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Logging.Debug {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	chunks, err := corpus.Load(cfg.Corpus.Path)
	if err != nil {
		logger.Fatal("corpus load failed", zap.Error(err))
	}
	index := retrieval.NewIndex(chunks, cfg.Retrieval.MaxResults, cfg.Retrieval.MinScore)
	logger.Info("corpus indexed", zap.Int("chunks", index.Len()))

	systemPrompt := corpus.LoadSystemPrompt(cfg.Corpus.SystemPromptPath)

	var generator domain.Generator
	client, err := gemini.NewClient(gemini.Config{
		APIKey:  config.APIKey(),
		Model:   cfg.Gemini.Model,
		Timeout: time.Duration(cfg.Gemini.TimeoutSecs) * time.Second,
	})
	switch {
	case err == gemini.ErrNoAPIKey:
		logger.Warn("GEMINI_API_KEY not set, serving fallback answers only")
	case err != nil:
		logger.Fatal("gemini client init failed", zap.Error(err))
	default:
		generator = client
		logger.Info("gemini client ready", zap.String("model", cfg.Gemini.Model))
	}

	genCfg := domain.GenerationConfig{
		MaxOutputTokens: cfg.Gemini.MaxOutputTokens,
		Temperature:     cfg.Gemini.Temperature,
		TopK:            cfg.Gemini.TopK,
		TopP:            cfg.Gemini.TopP,
	}
	b := bot.New(index, generator, systemPrompt, genCfg, logger)

	srv := server.New(cfg.Server.Addr, b, cfg.Server.AllowedOrigins, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := srv.Run(ctx); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
	logger.Info("shutdown complete")
}
