package corpus

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/Guten-Morgen1302/sportscom-chatbot/internal/domain"
)

var blankLineRe = regexp.MustCompile(`\r?\n(?:[ \t]*\r?\n)+`)

// Load reads the knowledge corpus and splits it into chunks on blank-line
// boundaries. A missing or empty corpus is a startup error: without it
// there is nothing to retrieve, so we fail fast rather than serve a
// silently degraded bot.
func Load(path string) ([]domain.Chunk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus %s: %w", path, err)
	}
	chunks := Split(string(data))
	if len(chunks) == 0 {
		return nil, fmt.Errorf("corpus %s contains no chunks", path)
	}
	return chunks, nil
}

// Split chunks raw corpus text on one or more blank lines. Each chunk is
// trimmed; empty chunks are dropped. Indexes are assigned in document
// order and stay stable for the process lifetime.
func Split(text string) []domain.Chunk {
	parts := blankLineRe.Split(text, -1)
	chunks := make([]domain.Chunk, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		chunks = append(chunks, domain.Chunk{Index: len(chunks), Text: p})
	}
	return chunks
}

// LoadSystemPrompt reads the system prompt asset, falling back to a
// built-in prompt when the file is absent. Unlike the corpus, a missing
// prompt file is survivable.
func LoadSystemPrompt(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultSystemPrompt
	}
	prompt := strings.TrimSpace(string(data))
	if prompt == "" {
		return DefaultSystemPrompt
	}
	return prompt
}

// DefaultSystemPrompt is used when no system_prompt.txt asset is shipped.
const DefaultSystemPrompt = "You are a helpful SportsCom senior at SPIT college. " +
	"Respond in Hinglish style and help students with sports queries. " +
	"If you don't know the answer, say \"Ask this on sports update group\"."
