package cmd

import (
	"github.com/spf13/cobra"
)

var organize bool

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Clean, optimize or minify the stylesheet",
}

var cssCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove rules no HTML page uses",
	Long: `Remove stylesheet rules whose classes and ids never appear in the HTML pages.

Selectors with pseudo-classes or at-rules, and selectors mentioning a kept
element name, are never removed. The original is saved next to the
stylesheet before it is rewritten.`,
	Run: func(cmd *cobra.Command, args []string) {
		p := newPipeline()
		run("Clean", p.CleanCSS)
	},
}

var cssOptimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Remove empty rules, merge duplicates and pretty-print",
	Run: func(cmd *cobra.Command, args []string) {
		p := newPipeline()
		run("Optimize", func() error { return p.OptimizeCSS(organize) })
	},
}

var cssMinifyCmd = &cobra.Command{
	Use:   "minify",
	Short: "Write a minified copy of the stylesheet",
	Run: func(cmd *cobra.Command, args []string) {
		p := newPipeline()
		run("Minify", p.MinifyCSS)
	},
}

func init() {
	cssOptimizeCmd.Flags().BoolVar(&organize, "organize", false, "Group rules into reset, base, layout, components, utilities and responsive sections")

	cssCmd.AddCommand(cssCleanCmd)
	cssCmd.AddCommand(cssOptimizeCmd)
	cssCmd.AddCommand(cssMinifyCmd)
	rootCmd.AddCommand(cssCmd)
}
