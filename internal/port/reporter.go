package port

import "github.com/plocket/llm-survey/internal/domain"

// Reporter renders ranked scores, most consistent first.
type Reporter interface {
	Report(scores []domain.ConsistencyScore) error
}
