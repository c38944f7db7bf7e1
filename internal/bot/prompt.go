package bot

import (
	"fmt"
	"strings"
)

// buildPrompt assembles the full generateContent prompt: system
// instructions, the retrieved context snippets joined by newline, and the
// user's message. With no context the prompt drops the context block and
// reminds the model of the don't-know answer instead.
func buildPrompt(systemPrompt string, contextSnippets []string, userMessage string) string {
	if len(contextSnippets) > 0 {
		return fmt.Sprintf(`%s

Context from SportsCom chat history:
%s

User: %s

Respond as a SPIT SportsCom senior student in Hinglish, following the rules strictly. Keep it under 800 characters unless user says "detail".
`, systemPrompt, strings.Join(contextSnippets, "\n"), userMessage)
	}
	return fmt.Sprintf(`%s

User: %s

Respond as a SPIT SportsCom senior student in Hinglish. If you don't know, say "Ask this on sports update group".
`, systemPrompt, userMessage)
}
