package pipeline

import (
	"sitetidy/internal/css"
	"sitetidy/internal/minify"
	"sitetidy/internal/rewrite"
	"sitetidy/internal/ui"
)

// CleanCSS removes rules the HTML corpus never uses from the stylesheet
func (p *Pipeline) CleanCSS() error {
	styles := p.Config.Styles
	source, err := p.readInput(styles)
	if err != nil {
		return err
	}

	docs, err := p.loadCorpus()
	if err != nil {
		return err
	}

	usage := css.NewUsage()
	for _, doc := range docs {
		usage.Add(doc.Content)
	}
	p.keyValue("Classes", "%d", len(usage.Classes))
	p.keyValue("IDs", "%d", len(usage.IDs))

	result := css.RemoveUnused(source, usage, css.Analyzer{KeepElements: p.Config.KeepElements})
	p.keyValue("Rules", "%d", len(result.Used)+len(result.Unused))
	p.keyValue("Used", "%d", len(result.Used))
	p.keyValue("Unused", "%d", len(result.Unused))

	if len(result.Unused) == 0 {
		if !p.Quiet {
			ui.PrintSuccess("No unused rules in %s", styles)
		}
		return nil
	}

	selectors := make([]string, 0, len(result.Unused))
	for _, r := range result.Unused {
		selectors = append(selectors, r.Key())
	}
	p.list(selectors)
	if n := result.Skipped(); n > 0 {
		ui.PrintWarning("%d unused rules could not be located in %s and will be kept", n, styles)
	}
	p.size(styles, rewrite.Measure(source, result.Output))

	if result.Removed == 0 {
		return nil
	}
	if err := p.confirm(); err != nil {
		return err
	}

	backup, err := rewrite.WriteWithBackup(p.path(styles), source, result.Output, p.Config.Backups.Clean)
	if err != nil {
		return err
	}
	p.Logger.Info("stylesheet cleaned", "path", p.path(styles), "removed", result.Removed)
	if !p.Quiet {
		ui.PrintSuccess("Removed %d unused rules (backup: %s)", result.Removed, backup)
	}
	return nil
}

// OptimizeCSS removes empty rules, collapses repeated properties, merges
// duplicate selectors and pretty-prints the stylesheet in place.
func (p *Pipeline) OptimizeCSS(organize bool) error {
	styles := p.Config.Styles
	source, err := p.readInput(styles)
	if err != nil {
		return err
	}

	result := css.Optimize(source, css.OptimizeOptions{Organize: organize})
	p.keyValue("Empty rules", "%d", result.EmptyRemoved)
	p.keyValue("Duplicate selectors", "%d", len(result.Duplicates))
	p.list(result.Duplicates)
	p.keyValue("Rules", "%d", result.Rules)
	p.size(styles, rewrite.Measure(source, result.Output))

	if result.Output == source {
		if !p.Quiet {
			ui.PrintSuccess("%s is already optimized", styles)
		}
		return nil
	}
	if err := p.confirm(); err != nil {
		return err
	}

	backup, err := rewrite.WriteWithBackup(p.path(styles), source, result.Output, p.Config.Backups.Optimize)
	if err != nil {
		return err
	}
	p.Logger.Info("stylesheet optimized", "path", p.path(styles), "organize", organize)
	if !p.Quiet {
		ui.PrintSuccess("Optimized %s (backup: %s)", styles, backup)
	}
	return nil
}

// MinifyCSS writes a minified copy of the stylesheet
func (p *Pipeline) MinifyCSS() error {
	source, err := p.readInput(p.Config.Styles)
	if err != nil {
		return err
	}

	out := p.Config.Outputs.MinifiedStyles
	size, err := p.writeMinified(out, source, minify.KindCSS)
	if err != nil {
		return err
	}
	p.size(out, size)
	if !p.Quiet {
		ui.PrintSuccess("Wrote %s", out)
	}
	return nil
}
