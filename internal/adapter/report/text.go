package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/plocket/llm-survey/internal/domain"
)

// TextReporter writes one "<model> consistency: <value>" line per model.
type TextReporter struct {
	w             io.Writer
	styles        styles
	passThreshold float64
	warnThreshold float64
}

// NewTextReporter creates a TextReporter. Values at or above passThreshold
// are rendered as passing, values at or above warnThreshold as warnings and
// anything lower as failing. Colors are dropped when w is not a terminal.
func NewTextReporter(w io.Writer, passThreshold, warnThreshold float64) *TextReporter {
	return &TextReporter{
		w:             w,
		styles:        newStyles(lipgloss.NewRenderer(w)),
		passThreshold: passThreshold,
		warnThreshold: warnThreshold,
	}
}

func (r *TextReporter) Report(scores []domain.ConsistencyScore) error {
	if len(scores) == 0 {
		_, err := fmt.Fprintln(r.w, "No models found.")
		return err
	}

	for _, s := range scores {
		value := r.valueStyle(s.Value).Render(FormatValue(s.Value))
		if _, err := fmt.Fprintf(r.w, "%s consistency: %s\n", r.styles.name.Render(s.ModelName), value); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextReporter) valueStyle(v float64) lipgloss.Style {
	switch {
	case v >= r.passThreshold:
		return r.styles.pass
	case v >= r.warnThreshold:
		return r.styles.warn
	default:
		return r.styles.fail
	}
}

// FormatValue prints the shortest decimal that round-trips to v.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseErrors writes one line per skipped log line.
func ParseErrors(w io.Writer, errs []*domain.ParseError) {
	for _, e := range errs {
		fmt.Fprintf(w, "Skipping line (%s)\n", e)
	}
}
