package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr           string `yaml:"addr"`
	AllowedOrigins string `yaml:"allowed_origins"`
}

// CorpusConfig points at the static knowledge assets.
type CorpusConfig struct {
	Path             string `yaml:"path"`
	SystemPromptPath string `yaml:"system_prompt_path"`
}

// RetrievalConfig tunes the lexical context search.
type RetrievalConfig struct {
	MaxResults int     `yaml:"max_results"`
	MinScore   float64 `yaml:"min_score"`
}

// GeminiConfig configures the generateContent client. The API key is
// deliberately absent: it only ever comes from the GEMINI_API_KEY env var.
type GeminiConfig struct {
	Model           string  `yaml:"model"`
	TimeoutSecs     int     `yaml:"timeout_secs"`
	MaxOutputTokens int     `yaml:"max_output_tokens"`
	Temperature     float64 `yaml:"temperature"`
	TopK            int     `yaml:"top_k"`
	TopP            float64 `yaml:"top_p"`
}

// LoggingConfig selects the log verbosity.
type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Corpus    CorpusConfig    `yaml:"corpus"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// Load reads a config from a specified path. If the file does not exist,
// returns defaults so the bot can run with nothing but a corpus and an
// API key in the environment. Defaults are filled in before decoding, so
// the file only overrides the fields it actually sets and an explicit
// zero stays a zero.
func Load(path string) (*AppConfig, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Addr:           ":5000",
			AllowedOrigins: "*",
		},
		Corpus: CorpusConfig{
			Path:             "assets/context.txt",
			SystemPromptPath: "assets/system_prompt.txt",
		},
		Retrieval: RetrievalConfig{
			MaxResults: 3,
			MinScore:   0.1,
		},
		Gemini: GeminiConfig{
			Model:           "gemini-2.5-flash",
			TimeoutSecs:     20,
			MaxOutputTokens: 800,
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.8,
		},
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Addr = ":" + port
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		cfg.Gemini.Model = model
	}
}

// APIKey returns the Gemini API key from the environment, empty when the
// model is unconfigured. An empty key is not an error: the bot still
// answers every request via the fallback responder.
func APIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}
