package port

import "github.com/plocket/llm-survey/internal/domain"

type Tokenizer interface {
	Tokenize(text string) domain.TokenSet

	Words(text string) []string
}
