package retrieval

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Guten-Morgen1302/sportscom-chatbot/internal/domain"
)

func chunksFrom(texts ...string) []domain.Chunk {
	chunks := make([]domain.Chunk, len(texts))
	for i, text := range texts {
		chunks[i] = domain.Chunk{Index: i, Text: text}
	}
	return chunks
}

func TestSearch_RanksBasketballAboveCricket(t *testing.T) {
	idx := NewIndex(chunksFrom(
		"Basketball trials at Wadia court",
		"Cricket trials at Bhavan's ground",
	), 3, 0.1)

	got := idx.Search("when is basketball trial")
	if len(got) == 0 {
		t.Fatal("Search returned no results")
	}
	if !strings.Contains(got[0], "Basketball") {
		t.Fatalf("top result = %q, want the basketball chunk first", got[0])
	}
}

func TestSearch_NeverMoreThanMaxResults(t *testing.T) {
	var texts []string
	for i := 0; i < 10; i++ {
		texts = append(texts, fmt.Sprintf("basketball practice session number %d", i))
	}
	idx := NewIndex(chunksFrom(texts...), 3, 0.1)

	got := idx.Search("basketball practice")
	if len(got) > 3 {
		t.Fatalf("Search returned %d results, want <= 3", len(got))
	}
}

func TestSearch_ThresholdIsStrict(t *testing.T) {
	// Query of 10 tokens sharing exactly one with the chunk: score 0.1,
	// which must NOT clear the > 0.1 floor.
	idx := NewIndex(chunksFrom("basketball"), 3, 0.1)
	query := "basketball one two three four five six seven eight nine"
	if got := idx.Search(query); len(got) != 0 {
		t.Fatalf("Search = %v, want empty for score == threshold", got)
	}
}

func TestSearch_NoMatchIsEmptyNotError(t *testing.T) {
	idx := NewIndex(chunksFrom("Basketball trials at Wadia court"), 3, 0.1)
	if got := idx.Search("zzz qqq xxx"); len(got) != 0 {
		t.Fatalf("Search = %v, want empty", got)
	}
}

func TestRank_StableOrderAmongTies(t *testing.T) {
	// Both chunks share the single query token with identical counts, so
	// their scores tie and corpus order must be preserved.
	idx := NewIndex(chunksFrom(
		"volleyball evening practice",
		"volleyball trials announcement",
	), 3, 0.1)

	scored := idx.rank("volleyball")
	if len(scored) != 2 {
		t.Fatalf("rank returned %d results, want 2", len(scored))
	}
	if scored[0].Score != scored[1].Score {
		t.Fatalf("expected tie, got %v vs %v", scored[0].Score, scored[1].Score)
	}
	if scored[0].Chunk.Index != 0 || scored[1].Chunk.Index != 1 {
		t.Fatalf("tie broke corpus order: got indexes %d, %d", scored[0].Chunk.Index, scored[1].Chunk.Index)
	}
}

func TestRank_ScoresExceedFloor(t *testing.T) {
	idx := NewIndex(chunksFrom(
		"Basketball trials at Wadia court",
		"Cricket trials at Bhavan's ground",
		"Badminton at ASC courts",
	), 3, 0.1)
	for _, s := range idx.rank("when is basketball trial") {
		if s.Score <= 0.1 {
			t.Errorf("returned chunk %d with score %v, want > 0.1", s.Chunk.Index, s.Score)
		}
	}
}
