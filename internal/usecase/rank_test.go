package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plocket/llm-survey/internal/adapter/analyzer"
	"github.com/plocket/llm-survey/internal/adapter/memstore"
	"github.com/plocket/llm-survey/internal/adapter/scorer"
	"github.com/plocket/llm-survey/internal/domain"
	"github.com/plocket/llm-survey/internal/logging"
)

type staticSource struct {
	result *domain.LoadResult
	err    error
}

func (s staticSource) Load() (*domain.LoadResult, error) {
	return s.result, s.err
}

func conversation(name string, contents ...string) domain.ModelRecord {
	rec := domain.ModelRecord{Name: name}
	for _, c := range contents {
		rec.Responses = append(rec.Responses,
			domain.Turn{Role: "user", Content: "tell me again"},
			domain.Turn{Role: domain.RoleAssistant, Content: c},
		)
	}
	return rec
}

func sampleRecords() []domain.ModelRecord {
	return []domain.ModelRecord{
		conversation("drifty", "cats dogs", "rockets planets", "soup bread"),
		conversation("steady", "Paris capital France", "Paris capital France", "Paris capital France"),
		{Name: "silent"},
		conversation("mixed", "Paris capital France", "Paris France city", "capital Paris"),
		{Name: "silent-too"},
	}
}

func newUseCase(records []domain.ModelRecord, workers int) *RankUseCase {
	src := memstore.NewMemorySource(records...)
	sc := scorer.NewScorer(analyzer.NewTokenizer(nil))
	return NewRankUseCase(src, sc, workers, nil, logging.Discard())
}

func TestRun_RanksDescending(t *testing.T) {
	res, err := newUseCase(sampleRecords(), 1).Run(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, res.Ranked, 5)

	for i := 1; i < len(res.Ranked); i++ {
		assert.GreaterOrEqual(t, res.Ranked[i-1].Value, res.Ranked[i].Value)
	}

	// The two empty conversations tie at 0.5 and keep log order.
	var neutral []string
	for _, s := range res.Ranked {
		if s.Value == scorer.NeutralScore {
			neutral = append(neutral, s.ModelName)
		}
	}
	assert.Equal(t, []string{"silent", "silent-too"}, neutral)
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	var records []domain.ModelRecord
	for i := 0; i < 40; i++ {
		for _, rec := range sampleRecords() {
			rec.Name = fmt.Sprintf("%s-%d", rec.Name, i)
			records = append(records, rec)
		}
	}

	seq, err := newUseCase(records, 1).Run(context.Background(), nil)
	require.NoError(t, err)
	par, err := newUseCase(records, 8).Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, seq.Ranked, par.Ranked)
}

func TestRun_ReportsProgress(t *testing.T) {
	var calls []int
	total := 0
	_, err := newUseCase(sampleRecords(), 3).Run(context.Background(), func(processed, n int, model string) {
		calls = append(calls, processed)
		total = n
	})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, calls)
	assert.Equal(t, 5, total)
}

func TestRun_PassesParseErrorsThrough(t *testing.T) {
	pe := &domain.ParseError{Line: 2, Err: errors.New("bad")}
	src := memstore.NewMemorySource(sampleRecords()...)
	src.PutError(pe)
	uc := NewRankUseCase(src, scorer.NewScorer(analyzer.NewTokenizer(nil)), 1, nil, logging.Discard())

	res, err := uc.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Lines)
	assert.Equal(t, []*domain.ParseError{pe}, res.ParseErrors)
}

func TestRun_SourceErrorIsFatal(t *testing.T) {
	src := staticSource{err: errors.New("open llm_log.jsonl: no such file")}
	uc := NewRankUseCase(src, scorer.NewScorer(analyzer.NewTokenizer(nil)), 1, nil, logging.Discard())

	res, err := uc.Run(context.Background(), nil)
	assert.Nil(t, res)
	assert.Error(t, err)
}

func TestScoreAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		_, err := newUseCase(nil, workers).ScoreAll(ctx, sampleRecords(), nil)
		assert.ErrorIs(t, err, context.Canceled, "workers=%d", workers)
	}
}

func TestRun_TracedModelsOnly(t *testing.T) {
	var seen []string
	traced := func(model string) bool {
		seen = append(seen, model)
		return model == "steady"
	}
	src := memstore.NewMemorySource(sampleRecords()...)
	uc := NewRankUseCase(src, scorer.NewScorer(analyzer.NewTokenizer(nil)), 1, traced, logging.Discard())

	_, err := uc.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, seen, 5)
}
