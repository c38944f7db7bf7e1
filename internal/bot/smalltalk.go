package bot

import (
	"math/rand"
	"regexp"
)

// smallTalkCategory identifies a class of pure pleasantry message.
type smallTalkCategory int

const (
	smallTalkNone smallTalkCategory = iota
	smallTalkGreeting
	smallTalkStatusCheck
	smallTalkThanks
	smallTalkAck
	smallTalkFarewell
)

// Patterns are anchored to the whole trimmed message so "hi, when is
// basketball trial" is not swallowed as a greeting. Classification is
// deterministic; only the reply selection is randomized.
var smallTalkPatterns = []struct {
	re       *regexp.Regexp
	category smallTalkCategory
}{
	{regexp.MustCompile(`(?i)^\s*(hi|hello|hey|yo|hola|namaste)\s*[!.]*\s*$`), smallTalkGreeting},
	{regexp.MustCompile(`(?i)^\s*(good\s*(morning|afternoon|evening|night))\s*[!.]*\s*$`), smallTalkGreeting},
	{regexp.MustCompile(`(?i)^\s*(how\s*are\s*you|hru|how'?s\s*it\s*going)\s*\??\s*$`), smallTalkStatusCheck},
	{regexp.MustCompile(`(?i)^\s*(thanks|thank\s*you|ty|thx)\s*[!.]*\s*$`), smallTalkThanks},
	{regexp.MustCompile(`(?i)^\s*(ok|okay|cool|nice)\s*[!.]*\s*$`), smallTalkAck},
	{regexp.MustCompile(`(?i)^\s*(bye|goodbye|see\s*ya|see\s*you)\s*[!.]*\s*$`), smallTalkFarewell},
}

var smallTalkReplies = map[smallTalkCategory][]string{
	smallTalkGreeting:    {"Hey! 👋", "Hello! 👋", "Hi! 👋"},
	smallTalkStatusCheck: {"All good! How can I help with sports info?", "Doing great!! What do you need help with?"},
	smallTalkThanks:      {"Anytime!", "You're welcome!", "Glad to help!"},
	smallTalkAck:         {"👍", "Got it!", "Cool."},
	smallTalkFarewell:    {"Bye! 👋", "See you around!", "Take care!"},
}

func classifySmallTalk(message string) smallTalkCategory {
	for _, p := range smallTalkPatterns {
		if p.re.MatchString(message) {
			return p.category
		}
	}
	return smallTalkNone
}

func smallTalkReply(category smallTalkCategory, rng *rand.Rand) string {
	pool := smallTalkReplies[category]
	if len(pool) == 0 {
		return "Hey! How can I help with sports info?"
	}
	return pool[rng.Intn(len(pool))]
}
