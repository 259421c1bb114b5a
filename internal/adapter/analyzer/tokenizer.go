package analyzer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/plocket/llm-survey/internal/domain"
)

// Tokenizer reduces a response to the set of words worth comparing.
//
// Stopwords are matched case-insensitively, but the surviving tokens keep
// their original case, so "Cats" and "cats" are different tokens.
type Tokenizer struct {
	stopwords *regexp.Regexp
}

// NewTokenizer creates a Tokenizer using the default stopword list plus any
// extra words given.
func NewTokenizer(extra []string) *Tokenizer {
	return &Tokenizer{
		stopwords: compileStopwords(append(defaultStopwords(), extra...)),
	}
}

// Tokenize returns the distinct important words of text.
func (t *Tokenizer) Tokenize(text string) domain.TokenSet {
	return domain.NewTokenSet(t.Words(text)...)
}

// Words returns the important words of text in order, duplicates kept.
func (t *Tokenizer) Words(text string) []string {
	return splitWords(t.StripStopwords(text))
}

// StripStopwords removes every stopword occurrence and leaves the
// surrounding separators in place.
func (t *Tokenizer) StripStopwords(text string) string {
	return t.stopwords.ReplaceAllString(text, "")
}

// splitWords splits on any character outside [A-Za-z0-9_]. Empty pieces
// between consecutive separators are dropped.
func splitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !isWordRune(r)
	})
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// compileStopwords builds one alternation anchored on word boundaries.
// Longer words go first so a contraction such as "can't" is removed whole
// instead of leaving "'t" behind after "can" matches.
func compileStopwords(words []string) *regexp.Regexp {
	seen := make(map[string]struct{}, len(words))
	uniq := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		uniq = append(uniq, w)
	}

	sort.Slice(uniq, func(i, j int) bool {
		if len(uniq[i]) != len(uniq[j]) {
			return len(uniq[i]) > len(uniq[j])
		}
		return uniq[i] < uniq[j]
	})

	quoted := make([]string, len(uniq))
	for i, w := range uniq {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}
