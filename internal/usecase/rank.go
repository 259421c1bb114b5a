package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/plocket/llm-survey/internal/adapter/scorer"
	"github.com/plocket/llm-survey/internal/domain"
	"github.com/plocket/llm-survey/internal/port"
)

// ProgressFunc is called after each model is scored.
type ProgressFunc func(processed, total int, model string)

// RankUseCase loads logged conversations, scores every model and ranks them.
type RankUseCase struct {
	source  port.RecordSource
	scorer  *scorer.Scorer
	workers int
	traced  func(model string) bool
	logger  *slog.Logger
}

// NewRankUseCase creates a new rank use case. traced may be nil.
func NewRankUseCase(
	source port.RecordSource,
	scorer *scorer.Scorer,
	workers int,
	traced func(model string) bool,
	logger *slog.Logger,
) *RankUseCase {
	if workers < 1 {
		workers = 1
	}
	if traced == nil {
		traced = func(string) bool { return false }
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RankUseCase{
		source:  source,
		scorer:  scorer,
		workers: workers,
		traced:  traced,
		logger:  logger,
	}
}

// RankResult contains the results of a ranking run.
type RankResult struct {
	Ranked      []domain.ConsistencyScore
	Lines       int
	ParseErrors []*domain.ParseError
}

// Run executes the whole pipeline. Scores are ranked in log order before
// sorting, so ties resolve the same way regardless of worker count.
func (u *RankUseCase) Run(ctx context.Context, progress ProgressFunc) (*RankResult, error) {
	loaded, err := u.source.Load()
	if err != nil {
		return nil, err
	}

	scores, err := u.ScoreAll(ctx, loaded.Records, progress)
	if err != nil {
		return nil, err
	}

	ranked := scorer.Rank(scores)
	if len(ranked) > 0 {
		u.logger.Info("ranked models", "models", len(ranked), "top", ranked[0].ModelName, "top_score", ranked[0].Value)
	}

	return &RankResult{
		Ranked:      ranked,
		Lines:       loaded.Lines,
		ParseErrors: loaded.Errors,
	}, nil
}

// ScoreAll scores each record, writing results at the record's index.
func (u *RankUseCase) ScoreAll(ctx context.Context, records []domain.ModelRecord, progress ProgressFunc) ([]domain.ConsistencyScore, error) {
	scores := make([]domain.ConsistencyScore, len(records))
	total := len(records)

	var mu sync.Mutex
	processed := 0
	report := func(model string) {
		if progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		processed++
		progress(processed, total, model)
	}

	if u.workers == 1 {
		for i, rec := range records {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("scoring cancelled: %w", err)
			}
			scores[i] = u.scorer.Score(rec, u.traced(rec.Name))
			report(rec.Name)
		}
		return scores, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)
	for i, rec := range records {
		i, rec := i, rec
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scores[i] = u.scorer.Score(rec, u.traced(rec.Name))
			report(rec.Name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scoring cancelled: %w", err)
	}

	return scores, nil
}
