package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Guten-Morgen1302/sportscom-chatbot/internal/domain"
)

// Client calls the Gemini generateContent REST API.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Config configures the Gemini client.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// ErrNoAPIKey is returned by NewClient when no credential is available.
// Callers treat it as "run in fallback-only mode", not as a fatal error.
var ErrNoAPIKey = errors.New("gemini: GEMINI_API_KEY not set")

// NewClient creates a generateContent client with a bounded HTTP timeout.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	t := cfg.Timeout
	if t == 0 {
		t = 20 * time.Second
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: t},
	}, nil
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	Temperature     float64 `json:"temperature,omitempty"`
	TopK            int     `json:"topK,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

const (
	maxRetries   = 1
	retryBackoff = 500 * time.Millisecond
)

// Generate sends the prompt and returns the model's text. One retry with a
// short backoff is attempted on 429 and 5xx responses; everything after
// that is the caller's problem, by design a recoverable one. An empty
// candidate list or empty text is an error so the caller can fall back.
func (c *Client) Generate(ctx context.Context, prompt string, cfg domain.GenerationConfig) (string, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		// Leave room for every attempt plus the backoff between them,
		// otherwise a first-attempt timeout would consume the whole budget.
		budget := time.Duration(maxRetries+1)*c.httpClient.Timeout + time.Duration(maxRetries)*retryBackoff
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, budget)
		defer cancel()
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			MaxOutputTokens: cfg.MaxOutputTokens,
			Temperature:     cfg.Temperature,
			TopK:            cfg.TopK,
			TopP:            cfg.TopP,
		},
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retryBackoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
		if err != nil {
			return "", fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			continue
		}
		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("read response: %w", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("gemini returned %s", resp.Status)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("gemini returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
		}

		var out generateResponse
		if err := json.Unmarshal(body, &out); err != nil {
			return "", fmt.Errorf("parse response: %w", err)
		}
		if out.Error != nil {
			return "", fmt.Errorf("gemini error: %s", out.Error.Message)
		}
		if len(out.Candidates) == 0 {
			return "", errors.New("gemini returned no candidates")
		}
		var sb strings.Builder
		for _, p := range out.Candidates[0].Content.Parts {
			sb.WriteString(p.Text)
		}
		text := strings.TrimSpace(sb.String())
		if text == "" {
			return "", errors.New("gemini returned empty text")
		}
		return text, nil
	}
	return "", lastErr
}
