package bot

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Guten-Morgen1302/sportscom-chatbot/internal/domain"
)

// trackedEvents are the mutually-exclusive event topics the bot knows
// about. The slice order is the priority order: when a message names more
// than one event, the earliest entry wins. Keep this ordered — a set here
// would make the isolation rule non-deterministic.
var trackedEvents = []string{"agility", "spoorthi", "marathon"}

// Length budgets for model answers, in characters. Users asking for
// "detail" get the larger budget.
const (
	maxResponseLen       = 800
	maxDetailResponseLen = 1200
)

// Validate checks a candidate model response against the domain rules:
// event isolation first, then the length budget. The first failing rule
// wins. A failing response is discarded entirely, never truncated or
// rewritten; this is the last line of defense against a model that
// ignores its instructions.
func Validate(response, userMessage string) domain.Verdict {
	userLower := strings.ToLower(userMessage)
	respLower := strings.ToLower(response)

	var userEvent string
	for _, ev := range trackedEvents {
		if strings.Contains(userLower, ev) {
			userEvent = ev
			break
		}
	}
	if userEvent != "" {
		for _, other := range trackedEvents {
			if other == userEvent {
				continue
			}
			if strings.Contains(respLower, other) {
				return domain.Verdict{
					Valid:  false,
					Reason: fmt.Sprintf("response mentions %s when user asked about %s", other, userEvent),
				}
			}
		}
	}

	limit := maxResponseLen
	if strings.Contains(userLower, "detail") {
		limit = maxDetailResponseLen
	}
	if utf8.RuneCountInString(response) > limit {
		return domain.Verdict{
			Valid:  false,
			Reason: fmt.Sprintf("response exceeds %d character limit", limit),
		}
	}

	return domain.Verdict{Valid: true, Reason: "valid"}
}
