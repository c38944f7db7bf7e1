package main

import (
	"flag"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Guten-Morgen1302/sportscom-chatbot/internal/bot"
	"github.com/Guten-Morgen1302/sportscom-chatbot/internal/config"
	"github.com/Guten-Morgen1302/sportscom-chatbot/internal/corpus"
	"github.com/Guten-Morgen1302/sportscom-chatbot/internal/domain"
	"github.com/Guten-Morgen1302/sportscom-chatbot/internal/gemini"
	"github.com/Guten-Morgen1302/sportscom-chatbot/internal/retrieval"
	"github.com/Guten-Morgen1302/sportscom-chatbot/internal/tui"
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

	// The TUI owns the terminal; keep structured logging out of its way.
	logger := zap.NewNop()

	chunks, err := corpus.Load(cfg.Corpus.Path)
	if err != nil {
		log.Fatalf("corpus load failed: %v", err)
	}
	index := retrieval.NewIndex(chunks, cfg.Retrieval.MaxResults, cfg.Retrieval.MinScore)
	systemPrompt := corpus.LoadSystemPrompt(cfg.Corpus.SystemPromptPath)

	var generator domain.Generator
	client, err := gemini.NewClient(gemini.Config{
		APIKey:  config.APIKey(),
		Model:   cfg.Gemini.Model,
		Timeout: time.Duration(cfg.Gemini.TimeoutSecs) * time.Second,
	})
	if err == nil {
		generator = client
	} else if err != gemini.ErrNoAPIKey {
		log.Fatalf("gemini client init failed: %v", err)
	}

	genCfg := domain.GenerationConfig{
		MaxOutputTokens: cfg.Gemini.MaxOutputTokens,
		Temperature:     cfg.Gemini.Temperature,
		TopK:            cfg.Gemini.TopK,
		TopP:            cfg.Gemini.TopP,
	}
	b := bot.New(index, generator, systemPrompt, genCfg, logger)

	m := tui.New(b)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
