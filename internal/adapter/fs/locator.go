package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrNoInput is returned when nothing matches the configured input path.
var ErrNoInput = errors.New("no input log found")

// Locator resolves the configured log path against a working directory.
type Locator struct {
	root string
}

func NewLocator(root string) *Locator {
	return &Locator{root: root}
}

// Resolve returns the files named by pattern. A plain path must exist and
// be a regular file. A pattern with glob metacharacters ("**" included) may
// match several files, returned in lexical order.
func (l *Locator) Resolve(pattern string) ([]string, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty input path", ErrNoInput)
	}

	path := pattern
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.root, path)
	}

	if !isGlob(pattern) {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrNoInput, path)
			}
			return nil, err
		}
		if info.IsDir() {
			return nil, fmt.Errorf("input path is a directory: %s", path)
		}
		return []string{path}, nil
	}

	matches, err := doublestar.FilepathGlob(path)
	if err != nil {
		return nil, fmt.Errorf("invalid input pattern %q: %w", pattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, m)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: nothing matches %s", ErrNoInput, path)
	}

	sort.Strings(files)
	return files, nil
}

func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
