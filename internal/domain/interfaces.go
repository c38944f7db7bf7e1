package domain

import "context"

// Chunk is one retrievable unit of the static knowledge corpus.
// Chunks are created once at startup and never mutated.
type Chunk struct {
	Index int
	Text  string
}

// Fingerprint is a bounded word-frequency summary of a text: normalized
// token -> occurrence count, capped at the top 50 most frequent tokens.
type Fingerprint map[string]int

// ScoredChunk pairs a chunk with its relevance score against a query.
type ScoredChunk struct {
	Chunk Chunk
	Score float64
}

// Verdict is the pass/fail judgment of a candidate model answer
// against the domain rules, with a human-readable reason on failure.
type Verdict struct {
	Valid  bool
	Reason string
}

// GenerationConfig holds sampling parameters for a model call.
type GenerationConfig struct {
	MaxOutputTokens int
	Temperature     float64
	TopK            int
	TopP            float64
}

// Generator produces text from a prompt. Implementations wrap a hosted
// LLM API and must tolerate arbitrary latency and transient errors;
// callers bound each call with a context deadline.
type Generator interface {
	Generate(ctx context.Context, prompt string, cfg GenerationConfig) (string, error)
}

// Retriever selects corpus snippets relevant to a raw query string.
type Retriever interface {
	Search(query string) []string
}
