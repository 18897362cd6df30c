// Package pipeline runs the stylesheet and script operations against one
// site directory, printing progress and guarding every rewrite with a
// confirmation and a backup.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"sitetidy/internal/config"
	"sitetidy/internal/corpus"
	"sitetidy/internal/minify"
	"sitetidy/internal/rewrite"
	"sitetidy/internal/ui"
)

var (
	// ErrMissingInput means a required input file does not exist
	ErrMissingInput = errors.New("missing input")
	// ErrCancelled means the user declined a destructive step; nothing was written
	ErrCancelled = errors.New("cancelled")
)

// ConfirmFunc asks a yes/no question
type ConfirmFunc func(question string) bool

// Pipeline holds everything one run needs
type Pipeline struct {
	Dir     string
	Config  *config.Config
	Confirm ConfirmFunc
	Quiet   bool
	Logger  *slog.Logger
}

// New creates a Pipeline over dir. Confirmation defaults to yes and logging
// to nothing; callers replace both as needed.
func New(dir string, cfg *config.Config) *Pipeline {
	return &Pipeline{
		Dir:     dir,
		Config:  cfg,
		Confirm: func(string) bool { return true },
		Logger:  slog.New(slog.DiscardHandler),
	}
}

func (p *Pipeline) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.Dir, name)
}

func (p *Pipeline) info(format string, args ...interface{}) {
	if !p.Quiet {
		ui.PrintInfo(format, args...)
	}
}

func (p *Pipeline) keyValue(key string, format string, args ...interface{}) {
	if !p.Quiet {
		ui.PrintKeyValue(key, fmt.Sprintf(format, args...))
	}
}

func (p *Pipeline) list(items []string) {
	if !p.Quiet {
		ui.PrintList(items, 10)
	}
}

func (p *Pipeline) size(label string, s rewrite.Size) {
	if !p.Quiet {
		ui.PrintSize(label, s.Original, s.New, s.Reduction(), s.Percent())
	}
}

// confirm asks before a destructive step
func (p *Pipeline) confirm() error {
	if p.Confirm != nil && !p.Confirm("Continue?") {
		p.Logger.Debug("confirmation declined")
		return ErrCancelled
	}
	return nil
}

// readInput reads a required file relative to Dir
func (p *Pipeline) readInput(name string) (string, error) {
	path := p.path(name)
	doc, err := corpus.ReadFile("", path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s not found", ErrMissingInput, path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	p.Logger.Debug("read input", "path", path, "bytes", len(doc.Content))
	return doc.Content, nil
}

// loadCorpus reads the HTML pages. Unreadable pages are reported and skipped.
func (p *Pipeline) loadCorpus() ([]corpus.Document, error) {
	docs, readErrs, err := corpus.Load(p.Dir, p.Config.HTML)
	if err != nil {
		return nil, fmt.Errorf("failed to discover HTML files: %w", err)
	}
	for _, re := range readErrs {
		ui.PrintWarning("Skipping %s: %v", re.Path, re.Err)
		p.Logger.Warn("unreadable page", "path", re.Path, "error", re.Err)
	}
	p.Logger.Debug("corpus loaded", "pages", len(docs), "skipped", len(readErrs))
	p.info("Scanned %d HTML files", len(docs))
	return docs, nil
}

// writeMinified minifies source with the configured engine and writes it
func (p *Pipeline) writeMinified(name, source string, kind minify.Kind) (rewrite.Size, error) {
	engine, err := minify.NewEngine(p.Config.Minify.Engine, kind)
	if err != nil {
		return rewrite.Size{}, err
	}
	out, err := engine.Minify(source)
	if err != nil {
		return rewrite.Size{}, fmt.Errorf("failed to minify %s: %w", name, err)
	}
	if err := rewrite.WriteFile(p.path(name), out); err != nil {
		return rewrite.Size{}, err
	}
	p.Logger.Debug("wrote artifact", "path", p.path(name), "engine", p.Config.Minify.Engine)
	return rewrite.Measure(source, out), nil
}
