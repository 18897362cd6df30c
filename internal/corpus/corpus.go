package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrNotUTF8 is returned for files that are not valid UTF-8 text
var ErrNotUTF8 = errors.New("not valid UTF-8")

// Document is one fully read source file
type Document struct {
	Path    string // relative to the corpus root
	Content string
}

// ReadError records a file that was skipped
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Discover expands patterns relative to baseDir and returns unique file
// paths relative to baseDir, in pattern order. Patterns support ** for
// recursive matching; directories are never returned.
func Discover(baseDir string, patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var results []string

	fsys := os.DirFS(baseDir)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid pattern %q", pattern)
		}

		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to expand %q: %w", pattern, err)
		}

		for _, match := range matches {
			path := filepath.FromSlash(match)
			if seen[path] {
				continue
			}
			seen[path] = true
			results = append(results, path)
		}
	}

	return results, nil
}

// Read loads every path under baseDir. A file that cannot be opened or is not
// valid UTF-8 is left out of the documents and reported in the errors; the
// remaining files are still read.
func Read(baseDir string, paths []string) ([]Document, []*ReadError) {
	var docs []Document
	var errs []*ReadError

	for _, path := range paths {
		doc, err := ReadFile(baseDir, path)
		if err != nil {
			errs = append(errs, &ReadError{Path: path, Err: err})
			continue
		}
		docs = append(docs, doc)
	}

	return docs, errs
}

// ReadFile reads a single document
func ReadFile(baseDir, path string) (Document, error) {
	data, err := os.ReadFile(filepath.Join(baseDir, path))
	if err != nil {
		return Document{}, err
	}
	if !utf8.Valid(data) {
		return Document{}, ErrNotUTF8
	}
	return Document{Path: path, Content: string(data)}, nil
}

// Load discovers and reads the corpus in one step
func Load(baseDir string, patterns []string) ([]Document, []*ReadError, error) {
	paths, err := Discover(baseDir, patterns)
	if err != nil {
		return nil, nil, err
	}
	docs, errs := Read(baseDir, paths)
	return docs, errs, nil
}
