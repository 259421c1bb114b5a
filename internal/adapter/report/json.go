package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/plocket/llm-survey/internal/domain"
)

// RankedScore is a ranked score for JSON output.
type RankedScore struct {
	Rank        int     `json:"rank"`
	Model       string  `json:"model"`
	Consistency float64 `json:"consistency"`
}

type JSONReporter struct {
	w io.Writer
}

func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

func (r *JSONReporter) Report(scores []domain.ConsistencyScore) error {
	out := make([]RankedScore, len(scores))
	for i, s := range scores {
		out[i] = RankedScore{Rank: i + 1, Model: s.ModelName, Consistency: s.Value}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode scores: %w", err)
	}
	_, err = fmt.Fprintln(r.w, string(data))
	return err
}
