package retrieval

import (
	"sort"

	"github.com/Guten-Morgen1302/sportscom-chatbot/internal/domain"
)

// Index holds the corpus chunks and their precomputed fingerprints.
// It is built once at startup and read-only afterwards, so it can be
// shared across concurrent requests without locking.
type Index struct {
	chunks       []domain.Chunk
	fingerprints []domain.Fingerprint
	maxResults   int
	minScore     float64
}

// NewIndex precomputes one fingerprint per chunk. maxResults and minScore
// control how many snippets a search may return and the relevance floor
// a chunk must clear (strictly) to be considered at all.
func NewIndex(chunks []domain.Chunk, maxResults int, minScore float64) *Index {
	if maxResults <= 0 {
		maxResults = 3
	}
	fps := make([]domain.Fingerprint, len(chunks))
	for i, ch := range chunks {
		fps[i] = Fingerprint(ch.Text)
	}
	return &Index{
		chunks:       chunks,
		fingerprints: fps,
		maxResults:   maxResults,
		minScore:     minScore,
	}
}

// Len returns the number of indexed chunks.
func (idx *Index) Len() int { return len(idx.chunks) }

// Search ranks every chunk against the query and returns the texts of the
// top matches above the relevance floor, best first. Ranking is a linear
// scan over all chunks; fine for a corpus of a few hundred chunks, not
// meant for more. An empty result is a normal outcome, not an error:
// callers answer with general instructions only.
func (idx *Index) Search(query string) []string {
	scored := idx.rank(query)
	out := make([]string, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.Chunk.Text)
	}
	return out
}

// rank returns the surviving (chunk, score) pairs sorted by score
// descending. The sort is stable so equal scores keep original corpus
// order.
func (idx *Index) rank(query string) []domain.ScoredChunk {
	qfp := Fingerprint(query)
	var scored []domain.ScoredChunk
	for i, cfp := range idx.fingerprints {
		score := Score(qfp, cfp)
		if score > idx.minScore {
			scored = append(scored, domain.ScoredChunk{Chunk: idx.chunks[i], Score: score})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > idx.maxResults {
		scored = scored[:idx.maxResults]
	}
	return scored
}
