package domain

import "fmt"

// RoleAssistant marks a turn produced by the model under evaluation.
const RoleAssistant = "assistant"

type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ModelRecord is one logged conversation attributed to a model.
type ModelRecord struct {
	Name      string
	Responses []Turn
}

// TokenSet holds the distinct important words of one response.
type TokenSet map[string]struct{}

// NewTokenSet builds a set from the given words, collapsing duplicates.
func NewTokenSet(words ...string) TokenSet {
	s := make(TokenSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s TokenSet) Has(word string) bool {
	_, ok := s[word]
	return ok
}

type ComparisonResult struct {
	DiffRatio float64
	SameRatio float64
}

type ConsistencyScore struct {
	ModelName string  `json:"model"`
	Value     float64 `json:"consistency"`
}

// ParseError reports a log line that could not be turned into a ModelRecord.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadResult is what ingestion hands to the scorer.
type LoadResult struct {
	Records []ModelRecord
	Lines   int
	Errors  []*ParseError
}
