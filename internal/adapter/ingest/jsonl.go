package ingest

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/plocket/llm-survey/internal/domain"
)

var (
	ErrMissingModel    = errors.New("missing \"model\"")
	ErrMissingMessages = errors.New("missing \"messages\"")
	ErrMissingContent  = errors.New("message missing \"content\"")
)

type logLine struct {
	Model    *string       `json:"model"`
	Messages *[]logMessage `json:"messages"`
}

type logMessage struct {
	Role    string  `json:"role"`
	Content *string `json:"content"`
}

// JSONLSource reads model conversations from newline-delimited JSON logs,
// one conversation per line.
type JSONLSource struct {
	paths  []string
	logger *slog.Logger
}

func NewJSONLSource(paths []string, logger *slog.Logger) *JSONLSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &JSONLSource{paths: paths, logger: logger}
}

// Load reads every configured file in order. A file that cannot be opened
// or read aborts the load; a bad line only adds a ParseError.
func (s *JSONLSource) Load() (*domain.LoadResult, error) {
	result := &domain.LoadResult{}

	for _, path := range s.paths {
		if err := s.loadFile(path, result); err != nil {
			return nil, err
		}
	}

	s.logger.Info("loaded conversation log",
		"files", len(s.paths),
		"lines", result.Lines,
		"models", len(result.Records),
		"parse_errors", len(result.Errors),
	)

	return result, nil
}

func (s *JSONLSource) loadFile(path string, result *domain.LoadResult) error {
	// nolint:gosec // G304: path comes from the configured input
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer file.Close()

	parsed, err := Parse(file, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	result.Lines += parsed.Lines
	result.Records = append(result.Records, parsed.Records...)
	result.Errors = append(result.Errors, parsed.Errors...)
	return nil
}

// Parse decodes a JSONL stream. name is recorded on each ParseError.
// Lines may be any length.
func Parse(r io.Reader, name string) (*domain.LoadResult, error) {
	result := &domain.LoadResult{}
	reader := bufio.NewReader(r)

	lineNum := 0
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, readErr
		}
		if readErr == io.EOF && line == "" {
			break
		}
		lineNum++

		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		// Skip empty lines
		if strings.TrimSpace(line) != "" {
			rec, err := parseLine(line)
			if err != nil {
				result.Errors = append(result.Errors, &domain.ParseError{Path: name, Line: lineNum, Err: err})
			} else {
				result.Records = append(result.Records, rec)
			}
		}

		if readErr == io.EOF {
			break
		}
	}

	result.Lines = lineNum
	return result, nil
}

func parseLine(line string) (domain.ModelRecord, error) {
	var raw logLine
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return domain.ModelRecord{}, err
	}
	if raw.Model == nil {
		return domain.ModelRecord{}, ErrMissingModel
	}
	if raw.Messages == nil {
		return domain.ModelRecord{}, ErrMissingMessages
	}

	turns := make([]domain.Turn, len(*raw.Messages))
	for i, m := range *raw.Messages {
		if m.Content == nil {
			return domain.ModelRecord{}, fmt.Errorf("%w (message %d)", ErrMissingContent, i)
		}
		turns[i] = domain.Turn{Role: m.Role, Content: *m.Content}
	}

	return domain.ModelRecord{Name: *raw.Model, Responses: turns}, nil
}
