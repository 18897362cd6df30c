package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"sitetidy/internal/config"
	"sitetidy/internal/pipeline"
	"sitetidy/internal/ui"
)

// Version is set by ldflags during build
var Version = "dev"

var (
	siteDir    string
	configPath string
	assumeYes  bool
	quiet      bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "sitetidy",
	Short: "Static site stylesheet and script cleanup tool",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Long = ui.Divider() + "\n" + ui.Banner() + "\n" + ui.VersionLine(Version) + "\n\n" + ui.Divider() + "\n\n  Removes unused CSS and consolidates inline JavaScript for static HTML sites"

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&siteDir, "dir", "d", ".", "Site directory")
	flags.StringVarP(&configPath, "config", "c", "", "Config file (default: sitetidy.yaml, sitetidy.yml or sitetidy.properties in --dir)")
	flags.BoolVarP(&assumeYes, "yes", "y", false, "Answer yes to every confirmation")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Only print warnings and errors")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Print debug diagnostics to stderr")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sitetidy %s\n", Version)
	},
}

// newPipeline loads the configuration for --dir and wires the prompt and logger
func newPipeline() *pipeline.Pipeline {
	cfg, err := config.Load(siteDir, configPath)
	if err != nil {
		ui.PrintError("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	p := pipeline.New(siteDir, cfg)
	p.Quiet = quiet
	if !assumeYes {
		p.Confirm = ui.NewPrompter(os.Stdin, os.Stdout).Confirm
	}
	if verbose {
		p.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	if cfg.Source != "" {
		p.Logger.Debug("configuration loaded", "path", cfg.Source)
	}

	if !quiet {
		ui.PrintHeader(Version)
	}
	return p
}

// run executes one pipeline operation and exits on failure. A declined
// confirmation is not a failure.
func run(name string, op func() error) {
	err := op()
	switch {
	case err == nil:
	case errors.Is(err, pipeline.ErrCancelled):
		ui.PrintWarning("Operation cancelled")
	default:
		ui.PrintError("%s failed: %v", name, err)
		os.Exit(1)
	}
	if !quiet {
		fmt.Println()
	}
}
