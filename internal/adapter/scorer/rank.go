package scorer

import (
	"sort"

	"github.com/plocket/llm-survey/internal/domain"
)

// Rank returns the scores ordered from most to least consistent. Equal
// scores keep their input order. The input slice is not modified.
func Rank(scores []domain.ConsistencyScore) []domain.ConsistencyScore {
	ranked := make([]domain.ConsistencyScore, len(scores))
	copy(ranked, scores)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})

	return ranked
}
