package bot

import "strings"

// DefaultAnswer is the answer of last resort when no fallback bucket
// matches the user's message.
const DefaultAnswer = "Ask this on sports update group."

// fallbackBucket maps trigger keywords to a canned reply. Buckets are
// evaluated in slice order; the first whose keyword appears in the
// message wins.
type fallbackBucket struct {
	keywords []string
	reply    string
}

var fallbackBuckets = []fallbackBucket{
	{
		keywords: []string{"agility", "cup"},
		reply:    "Agility Cup open hai bro—apni team banao, mix branches/years chalega. November first week tentative hai. Final dates class groups pe aayenge.",
	},
	{
		keywords: []string{"spoorthi"},
		reply:    "Spoorthi Feb-Mar mein hai. Team sports ke liye college team selection chahiye, chess/TT jaise solos jab announce honge tab.",
	},
	{
		keywords: []string{"committee", "join", "selection"},
		reply:    "Committee selections after 10th October. Forms kal se float ho jayenge. Interview hogi but bakchodiyan bhi hongi, dw.",
	},
	{
		keywords: []string{"basketball"},
		reply:    "Basketball trials early Oct. Venue: Wadia court.",
	},
	{
		keywords: []string{"cricket", "football"},
		reply:    "Cricket/Football trials tentatively 1st week Nov. Venue: Bhavan's ground (post-rains maintenance dependent).",
	},
	{
		keywords: []string{"badminton"},
		reply:    "Badminton venue: ASC courts (online booking available).",
	},
	{
		keywords: []string{"chess"},
		reply:    "FIDE Chess tournament bhi hai. Chess teams technical hai, practice groups banenge.",
	},
	// Generic buckets come after the sport-specific ones so "when is
	// basketball trial" answers about basketball, not about dates.
	{
		keywords: []string{"date", "when", "schedule"},
		reply:    "Seniors will post the final dates on official class groups.",
	},
	{
		keywords: []string{"venue", "where", "court"},
		reply:    "Basketball: Wadia court, Cricket/Football: Bhavan's ground, Badminton: ASC courts, TT/Carrom: Gymkhana.",
	},
}

// Fallback deterministically routes a message to a canned answer by
// case-insensitive keyword match. Total and side-effect-free: any input,
// including empty or non-text, gets a non-empty reply.
func Fallback(userMessage string) string {
	msg := strings.ToLower(userMessage)
	for _, b := range fallbackBuckets {
		for _, kw := range b.keywords {
			if strings.Contains(msg, kw) {
				return b.reply
			}
		}
	}
	return DefaultAnswer
}
