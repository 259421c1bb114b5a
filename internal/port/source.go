package port

import "github.com/plocket/llm-survey/internal/domain"

// RecordSource loads model conversations from wherever they are logged.
type RecordSource interface {
	// Load returns every record it could parse. Per-line failures are
	// collected in LoadResult.Errors; only a failure to read the input
	// at all is returned as an error.
	Load() (*domain.LoadResult, error)
}
