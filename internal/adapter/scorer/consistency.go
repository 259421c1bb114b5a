package scorer

import (
	"log/slog"
	"sort"

	"github.com/plocket/llm-survey/internal/domain"
	"github.com/plocket/llm-survey/internal/port"
)

// Smoothing constants. Both pair counters start here instead of at zero,
// which pulls models with few assistant turns toward the midpoint and
// makes an empty conversation score exactly 0.5.
const (
	DiffSeed = 1
	SameSeed = 1
)

// NeutralScore is what a model with nothing to compare receives.
const NeutralScore = 0.5

// Scorer computes a consistency score per model by comparing each
// assistant turn with the turn that follows it.
type Scorer struct {
	tokenizer port.Tokenizer
	logger    *slog.Logger
	diffSeed  int
	sameSeed  int
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithLogger sets the logger used for traced models.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scorer) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeeds overrides the smoothing counters. Values below 1 are ignored.
func WithSeeds(diffSeed, sameSeed int) Option {
	return func(s *Scorer) {
		if diffSeed >= 1 {
			s.diffSeed = diffSeed
		}
		if sameSeed >= 1 {
			s.sameSeed = sameSeed
		}
	}
}

// NewScorer creates a Scorer.
func NewScorer(tokenizer port.Tokenizer, opts ...Option) *Scorer {
	s := &Scorer{
		tokenizer: tokenizer,
		logger:    slog.Default(),
		diffSeed:  DiffSeed,
		sameSeed:  SameSeed,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score returns the consistency of one model's logged conversation.
//
// Every assistant turn is compared with the next turn, and the last turn
// wraps around to the first. Non-assistant turns are never the left side of
// a comparison but can be the right side. When trace is true each pair is
// logged at debug level.
func (s *Scorer) Score(rec domain.ModelRecord, trace bool) domain.ConsistencyScore {
	var diffSum, sameSum float64
	diffCount := s.diffSeed
	sameCount := s.sameSeed

	n := len(rec.Responses)
	for i := 0; i < n; i++ {
		turnA := rec.Responses[i]
		if turnA.Role != domain.RoleAssistant {
			continue
		}
		j := (i + 1) % n
		turnB := rec.Responses[j]

		tA := s.tokenizer.Tokenize(turnA.Content)
		tB := s.tokenizer.Tokenize(turnB.Content)

		res, ok := Compare(tA, tB)
		if !ok {
			// Two empty sets are equal sets.
			res = domain.ComparisonResult{DiffRatio: 0, SameRatio: 1}
		}

		if trace {
			s.logger.Debug("compared turns",
				"model", rec.Name,
				"turn", i,
				"against", j,
				"diffs", sorted(diffWords(tA, tB)),
				"sames", sorted(sharedWords(tA, tB)),
				"diff_ratio", res.DiffRatio,
				"same_ratio", res.SameRatio,
			)
		}

		diffSum += res.DiffRatio
		diffCount++
		sameSum += res.SameRatio
		sameCount++
	}

	avgDiff := diffSum / float64(diffCount)
	diffConsistency := 1 - avgDiff
	sameConsistency := sameSum / float64(sameCount)

	consistency := (diffConsistency + sameConsistency) / 2

	if trace {
		s.logger.Debug("scored model",
			"model", rec.Name,
			"comparisons", diffCount-s.diffSeed,
			"diff_consistency", diffConsistency,
			"same_consistency", sameConsistency,
			"consistency", consistency,
		)
	}

	return domain.ConsistencyScore{ModelName: rec.Name, Value: consistency}
}

func sorted(words []string) []string {
	sort.Strings(words)
	return words
}
