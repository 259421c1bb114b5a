package scorer

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plocket/llm-survey/internal/adapter/analyzer"
	"github.com/plocket/llm-survey/internal/domain"
)

func newTestScorer(opts ...Option) *Scorer {
	return NewScorer(analyzer.NewTokenizer(nil), opts...)
}

func assistant(content string) domain.Turn {
	return domain.Turn{Role: domain.RoleAssistant, Content: content}
}

func user(content string) domain.Turn {
	return domain.Turn{Role: "user", Content: content}
}

func TestScore_WorkedExample(t *testing.T) {
	rec := domain.ModelRecord{
		Name: "X",
		Responses: []domain.Turn{
			assistant("cats dogs"),
			user("ignored"),
			assistant("cats birds"),
		},
	}

	// turn 0 vs turn 1: {cats,dogs} vs {ignored} -> diff (2+2)/3, same 0
	// turn 2 vs turn 0: {cats,birds} vs {cats,dogs} -> diff (1+1)/4, same (1+1)/4
	diffSum := 4.0/3.0 + 0.5
	sameSum := 0.5
	diffConsistency := 1 - diffSum/3
	sameConsistency := sameSum / 3
	want := (diffConsistency + sameConsistency) / 2

	got := newTestScorer().Score(rec, false)

	assert.Equal(t, "X", got.ModelName)
	assert.InDelta(t, want, got.Value, 1e-12)
	assert.InDelta(t, 5.0/18.0, got.Value, 1e-12)
}

func TestScore_EmptyResponses(t *testing.T) {
	got := newTestScorer().Score(domain.ModelRecord{Name: "empty"}, false)
	assert.Equal(t, NeutralScore, got.Value)
}

func TestScore_NoAssistantTurns(t *testing.T) {
	rec := domain.ModelRecord{
		Name: "quiet",
		Responses: []domain.Turn{
			user("what is a cat"),
			{Role: "system", Content: "be brief"},
			user("and a dog"),
		},
	}
	got := newTestScorer().Score(rec, false)
	assert.Equal(t, NeutralScore, got.Value)
}

func TestScore_SingleTurnWrapsOntoItself(t *testing.T) {
	rec := domain.ModelRecord{Name: "solo", Responses: []domain.Turn{assistant("cats dogs")}}

	// diff 0 over 2 counts, same 1 over 2 counts.
	got := newTestScorer().Score(rec, false)
	assert.InDelta(t, 0.75, got.Value, 1e-12)
}

func TestScore_LastTurnWrapsToFirst(t *testing.T) {
	// Only the final turn is an assistant turn; it must be compared with
	// turn 0, which shares every word.
	rec := domain.ModelRecord{
		Name: "wrap",
		Responses: []domain.Turn{
			user("cats dogs"),
			user("birds"),
			assistant("cats dogs"),
		},
	}
	got := newTestScorer().Score(rec, false)
	assert.InDelta(t, 0.75, got.Value, 1e-12)
}

func TestScore_EmptyContentStaysFinite(t *testing.T) {
	recs := []domain.ModelRecord{
		{Name: "blank", Responses: []domain.Turn{assistant(""), assistant("")}},
		{Name: "stopwords", Responses: []domain.Turn{assistant("the and of"), assistant("it is")}},
		{Name: "half", Responses: []domain.Turn{assistant("cats dogs"), assistant("")}},
	}

	s := newTestScorer()
	for _, rec := range recs {
		got := s.Score(rec, false)
		assert.False(t, math.IsNaN(got.Value), rec.Name)
		assert.False(t, math.IsInf(got.Value, 0), rec.Name)
	}

	// Two empty pairs count as identical: diff 0/3, same 2/3.
	assert.InDelta(t, 5.0/6.0, s.Score(recs[0], false).Value, 1e-12)
}

func TestScore_IdenticalResponses(t *testing.T) {
	rec := domain.ModelRecord{
		Name: "steady",
		Responses: []domain.Turn{
			assistant("Paris capital France"),
			assistant("Paris capital France"),
			assistant("Paris capital France"),
		},
	}
	// diff 0 over 4 counts, same 3 over 4 counts.
	got := newTestScorer().Score(rec, false)
	assert.InDelta(t, 0.875, got.Value, 1e-12)
}

func TestScore_Deterministic(t *testing.T) {
	rec := domain.ModelRecord{
		Name: "d",
		Responses: []domain.Turn{
			assistant("red green blue yellow"),
			user("again"),
			assistant("green blue purple"),
			assistant("orange red"),
		},
	}
	s := newTestScorer()
	first := s.Score(rec, false)
	for i := 0; i < 20; i++ {
		require.Equal(t, first, s.Score(rec, false))
	}
}

func TestScore_WithSeeds(t *testing.T) {
	rec := domain.ModelRecord{Name: "s", Responses: []domain.Turn{assistant("cats")}}

	// diff 0 over 3, same 1 over 3.
	got := newTestScorer(WithSeeds(2, 2)).Score(rec, false)
	assert.InDelta(t, (1+1.0/3.0)/2, got.Value, 1e-12)

	// Seeds below one are ignored.
	got = newTestScorer(WithSeeds(0, -1)).Score(rec, false)
	assert.InDelta(t, 0.75, got.Value, 1e-12)
}

func TestScore_TraceLogsPairs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := newTestScorer(WithLogger(logger))

	rec := domain.ModelRecord{
		Name:      "traced",
		Responses: []domain.Turn{assistant("cats dogs"), assistant("cats birds")},
	}

	s.Score(rec, false)
	assert.Empty(t, buf.String())

	s.Score(rec, true)
	out := buf.String()
	assert.Contains(t, out, "compared turns")
	assert.Contains(t, out, "model=traced")
	assert.Contains(t, out, "scored model")
}
