package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"sitetidy/internal/corpus"
	"sitetidy/internal/js"
	"sitetidy/internal/minify"
	"sitetidy/internal/rewrite"
	"sitetidy/internal/ui"
)

// AnalyzeJS extracts all inline code, writes it raw, optimized and minified,
// and writes a JSON report of unused functions and DOM queries.
func (p *Pipeline) AnalyzeJS() error {
	docs, err := p.loadCorpus()
	if err != nil {
		return err
	}

	code, handlers := js.ExtractCode(docs, p.Config.EventAttrs)
	if strings.TrimSpace(code) == "" {
		ui.PrintWarning("No JavaScript found")
		return nil
	}
	outputs := p.Config.Outputs
	if err := rewrite.WriteFile(p.path(outputs.Extracted), code); err != nil {
		return err
	}

	analysis := js.Analyze(code)
	report := js.NewReport(analysis, docs)
	data, err := report.JSON()
	if err != nil {
		return err
	}
	if err := rewrite.WriteFile(p.path(outputs.Report), string(data)); err != nil {
		return err
	}

	p.keyValue("Functions", "%d", len(analysis.Functions))
	p.keyValue("Variables", "%d", len(analysis.Variables))
	p.keyValue("DOM queries", "%d", len(analysis.DOMQueries))
	p.keyValue("Event listeners", "%d", len(analysis.EventListeners))
	p.keyValue("Inline handlers", "%d", len(handlers))
	p.keyValue("Unused functions", "%d", len(report.UnusedFunctions))
	p.list(report.UnusedFunctions)
	p.keyValue("Unused DOM queries", "%d", len(report.UnusedDOMQueries))
	p.list(report.UnusedDOMQueries)
	for _, rec := range report.Recommendations {
		p.info("%s", rec)
	}

	optimized := js.Optimize(code)
	if err := rewrite.WriteFile(p.path(outputs.Optimized), optimized); err != nil {
		return err
	}
	p.size(outputs.Optimized, rewrite.Measure(code, optimized))

	size, err := p.writeMinified(outputs.Minified, code, minify.KindJS)
	if err != nil {
		return err
	}
	p.size(outputs.Minified, size)

	if !p.Quiet {
		ui.PrintSuccess("Wrote %s, %s, %s and %s", outputs.Extracted, outputs.Optimized, outputs.Minified, outputs.Report)
	}
	return nil
}

// DedupeJS merges every distinct script block into one external script and
// a minified copy of it.
func (p *Pipeline) DedupeJS() error {
	docs, err := p.loadCorpus()
	if err != nil {
		return err
	}

	blocks := js.ExtractAllBlocks(docs)
	if len(blocks) == 0 {
		ui.PrintWarning("No script blocks found")
		return nil
	}

	d := js.Dedupe(blocks)
	p.keyValue("Script blocks", "%d", d.Total)
	p.keyValue("Unique", "%d", len(d.Unique))
	p.keyValue("Duplicates removed", "%d", d.Removed())
	for _, group := range d.Duplicates {
		p.info("Duplicate block %s found in %d files", group.Hash[:12], len(group.Sources))
		p.list(group.Sources)
	}

	b := p.Config.Buckets
	classifier, err := js.NewClassifier(b.DOMReady, b.Function, b.Event)
	if err != nil {
		return err
	}
	merged := classifier.Consolidate(d.Unique)
	for _, kind := range []js.Bucket{js.BucketFunctions, js.BucketOther, js.BucketEvents, js.BucketDOMReady} {
		p.keyValue("Bucket "+kind.String(), "%d", merged.Counts[kind])
	}
	for _, blk := range merged.Unwrapped {
		ui.PrintWarning("Could not unwrap %s handler from %s; kept verbatim with other code", b.DOMReady, blk.Source)
	}

	tidy := js.Tidy(merged.Output)
	if len(tidy.DuplicateVars) > 0 {
		ui.PrintWarning("Declared more than once: %s", strings.Join(tidy.DuplicateVars, ", "))
	}
	if tidy.EmptyFunctions > 0 {
		p.info("Removed %d empty functions", tidy.EmptyFunctions)
	}

	var original strings.Builder
	for _, blk := range blocks {
		original.WriteString(blk.Content)
	}

	outputs := p.Config.Outputs
	if err := rewrite.WriteFile(p.path(outputs.Scripts), tidy.Output); err != nil {
		return err
	}
	p.size(outputs.Scripts, rewrite.Measure(original.String(), tidy.Output))

	size, err := p.writeMinified(outputs.MinifiedScript, tidy.Output, minify.KindJSExtended)
	if err != nil {
		return err
	}
	p.size(outputs.MinifiedScript, size)

	if !p.Quiet {
		ui.PrintSuccess("Wrote %s and %s", outputs.Scripts, outputs.MinifiedScript)
	}
	return nil
}

// ExternalizeJS strips inline scripts from every page, points each page at
// script instead and writes a minified copy of script. An empty script
// uses the configured clean script name.
func (p *Pipeline) ExternalizeJS(script string) error {
	if script == "" {
		script = p.Config.Outputs.CleanScript
	}
	source, err := p.readInput(script)
	if err != nil {
		return err
	}

	docs, err := p.loadCorpus()
	if err != nil {
		return err
	}

	type change struct {
		doc     corpus.Document
		updated string
	}
	var changes []change
	var before, after int
	for _, doc := range docs {
		src := p.scriptSrc(doc.Path, script)
		updated, changed := js.Externalize(doc.Content, src)
		if !changed {
			continue
		}
		for _, dropped := range js.ExternalSources(doc.Content, src) {
			ui.PrintWarning("%s: removing external script %s", doc.Path, dropped)
		}
		changes = append(changes, change{doc: doc, updated: updated})
		before += len(doc.Content)
		after += len(updated)
	}

	p.keyValue("Pages to update", "%d", len(changes))
	if len(changes) > 0 {
		p.size("HTML", rewrite.Size{Original: before, New: after})
		if err := p.confirm(); err != nil {
			return err
		}
	}

	var errs []error
	updated := 0
	for _, c := range changes {
		if _, err := rewrite.WriteWithBackup(p.path(c.doc.Path), c.doc.Content, c.updated, p.Config.Backups.Externalize); err != nil {
			ui.PrintWarning("%v", err)
			errs = append(errs, err)
			continue
		}
		updated++
		p.Logger.Debug("page externalized", "path", c.doc.Path)
	}
	if len(errs) > 0 {
		return fmt.Errorf("failed to update %d of %d pages: %w", len(errs), len(changes), errors.Join(errs...))
	}

	out := minifiedName(script)
	size, err := p.writeMinified(out, source, minify.KindJSExtended)
	if err != nil {
		return err
	}
	p.size(out, size)

	if !p.Quiet {
		ui.PrintSuccess("Updated %d pages to load %s", updated, script)
	}
	return nil
}

// scriptSrc is the reference to script from a page at pagePath, both
// relative to Dir
func (p *Pipeline) scriptSrc(pagePath, script string) string {
	if filepath.IsAbs(script) {
		if rel, err := filepath.Rel(p.Dir, script); err == nil {
			script = rel
		} else {
			return filepath.Base(script)
		}
	}
	rel, err := filepath.Rel(filepath.Dir(pagePath), script)
	if err != nil {
		return filepath.ToSlash(script)
	}
	return filepath.ToSlash(rel)
}

// minifiedName turns scripts_clean.js into scripts_clean.min.js
func minifiedName(script string) string {
	ext := filepath.Ext(script)
	return strings.TrimSuffix(script, ext) + ".min" + ext
}
