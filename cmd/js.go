package cmd

import (
	"github.com/spf13/cobra"
)

var scriptName string

var jsCmd = &cobra.Command{
	Use:   "js",
	Short: "Analyze, consolidate or externalize inline JavaScript",
}

var jsAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Report unused functions and DOM queries",
	Long: `Extract all inline scripts and event handler attributes, then write the
extracted, optimized and minified code along with a JSON report of unused
functions and DOM queries. Findings are pattern based; review them before
deleting anything.`,
	Run: func(cmd *cobra.Command, args []string) {
		p := newPipeline()
		run("Analyze", p.AnalyzeJS)
	},
}

var jsDedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Merge distinct inline scripts into one external file",
	Run: func(cmd *cobra.Command, args []string) {
		p := newPipeline()
		run("Dedupe", p.DedupeJS)
	},
}

var jsExternalizeCmd = &cobra.Command{
	Use:   "externalize",
	Short: "Replace inline scripts with a reference to an external file",
	Run: func(cmd *cobra.Command, args []string) {
		p := newPipeline()
		run("Externalize", func() error { return p.ExternalizeJS(scriptName) })
	},
}

func init() {
	jsExternalizeCmd.Flags().StringVarP(&scriptName, "script", "s", "", "Script to reference (default: outputs.clean_scripts, scripts_clean.js)")

	jsCmd.AddCommand(jsAnalyzeCmd)
	jsCmd.AddCommand(jsDedupeCmd)
	jsCmd.AddCommand(jsExternalizeCmd)
	rootCmd.AddCommand(jsCmd)
}
