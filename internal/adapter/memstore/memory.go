package memstore

import (
	"github.com/plocket/llm-survey/internal/domain"
)

// MemorySource is a RecordSource over conversations that are already
// decoded, for library callers that build records without a JSONL log.
// It is not safe for concurrent use; fill it, then hand it to a RankUseCase.
type MemorySource struct {
	records []domain.ModelRecord
	errors  []*domain.ParseError
}

func NewMemorySource(records ...domain.ModelRecord) *MemorySource {
	s := &MemorySource{}
	for _, rec := range records {
		s.Put(rec)
	}
	return s
}

// Put appends a record. Load returns records in the order they were put.
func (s *MemorySource) Put(rec domain.ModelRecord) {
	turns := make([]domain.Turn, len(rec.Responses))
	copy(turns, rec.Responses)
	s.records = append(s.records, domain.ModelRecord{Name: rec.Name, Responses: turns})
}

// PutError records a line the caller's own decoder rejected, so it shows
// up in LoadResult.Errors next to JSONL parse errors.
func (s *MemorySource) PutError(pe *domain.ParseError) {
	s.errors = append(s.errors, pe)
}

func (s *MemorySource) Load() (*domain.LoadResult, error) {
	records := make([]domain.ModelRecord, len(s.records))
	copy(records, s.records)
	errs := make([]*domain.ParseError, len(s.errors))
	copy(errs, s.errors)

	return &domain.LoadResult{
		Records: records,
		Lines:   len(records) + len(errs),
		Errors:  errs,
	}, nil
}
