package scorer

import "github.com/plocket/llm-survey/internal/domain"

// Compare returns the difference and overlap ratios of two token sets.
//
// Both halves of each numerator are counted from a's side: the diff ratio
// doubles |a \ b| and the same ratio doubles |a ∩ b|. Words only b has are
// never counted. This reproduces the historical scoring literally and may
// not be what was originally intended; do not symmetrize it without
// re-baselining every stored score. As a consequence the two ratios need
// not sum to 1 and DiffRatio can exceed 1 when b is much smaller than a.
//
// ok is false when both sets are empty, in which case the ratios are
// undefined and the zero ComparisonResult is returned.
func Compare(a, b domain.TokenSet) (res domain.ComparisonResult, ok bool) {
	total := len(a) + len(b)
	if total == 0 {
		return domain.ComparisonResult{}, false
	}

	missing := 0
	shared := 0
	for w := range a {
		if b.Has(w) {
			shared++
		} else {
			missing++
		}
	}

	return domain.ComparisonResult{
		DiffRatio: float64(missing+missing) / float64(total),
		SameRatio: float64(shared+shared) / float64(total),
	}, true
}

// diffWords and sharedWords back the trace output.
func diffWords(a, b domain.TokenSet) []string {
	var out []string
	for w := range a {
		if !b.Has(w) {
			out = append(out, w)
		}
	}
	return out
}

func sharedWords(a, b domain.TokenSet) []string {
	var out []string
	for w := range a {
		if b.Has(w) {
			out = append(out, w)
		}
	}
	return out
}
