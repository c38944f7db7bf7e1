package retrieval

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Guten-Morgen1302/sportscom-chatbot/internal/domain"
)

// maxFingerprintTokens bounds a fingerprint to the most frequent tokens
// so chunk comparison stays O(1) regardless of chunk length.
const maxFingerprintTokens = 50

var wordRe = regexp.MustCompile(`\w+`)

// Fingerprint summarizes text as a mapping from normalized word token to
// occurrence count, keeping only the 50 most frequent tokens. Ties are
// broken by first-encountered order. No stop-word removal, no stemming.
// Pure and total: empty or non-text input yields an empty fingerprint.
func Fingerprint(text string) domain.Fingerprint {
	tokens := wordRe.FindAllString(strings.ToLower(text), -1)
	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}
	if len(order) > maxFingerprintTokens {
		sort.SliceStable(order, func(i, j int) bool {
			return counts[order[i]] > counts[order[j]]
		})
		order = order[:maxFingerprintTokens]
	}
	fp := make(domain.Fingerprint, len(order))
	for _, tok := range order {
		fp[tok] = counts[tok]
	}
	return fp
}

// Score compares a query fingerprint against a candidate. For each shared
// token it adds min(queryCount, candidateCount), then normalizes by the
// query's total token weight (floored at 1). The score is asymmetric:
// it rewards candidates covering a large fraction of the query's own
// vocabulary, and is not bounded above by 1. Disjoint vocabularies score
// exactly 0.
func Score(query, candidate domain.Fingerprint) float64 {
	sum := 0
	for tok, qc := range query {
		cc, ok := candidate[tok]
		if !ok {
			continue
		}
		if cc < qc {
			sum += cc
		} else {
			sum += qc
		}
	}
	if sum == 0 {
		return 0.0
	}
	total := 0
	for _, c := range query {
		total += c
	}
	if total < 1 {
		total = 1
	}
	return float64(sum) / float64(total)
}
