package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"sitetidy/internal/ui"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for sitetidy.

Bash:
  $ source <(sitetidy completion bash)

Zsh:
  $ sitetidy completion zsh > "${fpath[1]}/_sitetidy"

Fish:
  $ sitetidy completion fish > ~/.config/fish/completions/sitetidy.fish

PowerShell:
  PS> sitetidy completion powershell | Out-String | Invoke-Expression

Or run 'sitetidy completion install' to set up the current shell.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		if err := writeCompletion(args[0], os.Stdout); err != nil {
			ui.PrintError("%v", err)
			os.Exit(1)
		}
	},
}

var completionInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install shell completion for your current shell",
	Run: func(cmd *cobra.Command, args []string) {
		home, err := os.UserHomeDir()
		if err != nil {
			ui.PrintError("Could not find home directory: %v", err)
			os.Exit(1)
		}

		target, err := completionTargetFor(detectShell(os.Getenv("SHELL")), home)
		if err != nil {
			ui.PrintError("%v", err)
			os.Exit(1)
		}

		if err := target.install(); err != nil {
			ui.PrintError("%v", err)
			os.Exit(1)
		}
		ui.PrintSuccess("Installed completion script to %s", target.File)

		if target.RC == "" {
			return
		}
		updated, err := target.updateRC()
		if err != nil {
			ui.PrintWarning("Could not update %s: %v", target.RC, err)
			ui.PrintInfo("Please add manually: %s", strings.TrimSpace(target.SourceLine))
			return
		}
		if updated {
			ui.PrintSuccess("Updated %s", target.RC)
		}
		ui.PrintInfo("Restart your shell or run: source %s", target.RC)
	},
}

// completionTarget is where a shell expects its completion script
type completionTarget struct {
	Shell      string
	File       string
	RC         string // empty when the shell loads File on its own
	SourceLine string
}

func completionTargetFor(shell, home string) (completionTarget, error) {
	switch shell {
	case "zsh":
		dir := filepath.Join(home, ".zsh", "completions")
		return completionTarget{
			Shell:      shell,
			File:       filepath.Join(dir, "_sitetidy"),
			RC:         filepath.Join(home, ".zshrc"),
			SourceLine: fmt.Sprintf("\nfpath=(%s $fpath)\nautoload -Uz compinit && compinit\n", dir),
		}, nil
	case "bash":
		file := filepath.Join(home, ".bash_completion.d", "sitetidy")
		return completionTarget{
			Shell:      shell,
			File:       file,
			RC:         filepath.Join(home, ".bashrc"),
			SourceLine: fmt.Sprintf("\n[ -f %s ] && source %s\n", file, file),
		}, nil
	case "fish":
		return completionTarget{
			Shell: shell,
			File:  filepath.Join(home, ".config", "fish", "completions", "sitetidy.fish"),
		}, nil
	case "":
		return completionTarget{}, fmt.Errorf("could not detect shell, use 'sitetidy completion [bash|zsh|fish|powershell]' manually")
	}
	return completionTarget{}, fmt.Errorf("auto-install not supported for %s, use 'sitetidy completion %s' manually", shell, shell)
}

func (t completionTarget) install() error {
	if err := os.MkdirAll(filepath.Dir(t.File), 0755); err != nil {
		return fmt.Errorf("failed to create completion directory: %w", err)
	}
	f, err := os.Create(t.File)
	if err != nil {
		return fmt.Errorf("failed to create completion file: %w", err)
	}
	defer f.Close()
	return writeCompletion(t.Shell, f)
}

// updateRC appends SourceLine unless the rc file already has it
func (t completionTarget) updateRC() (bool, error) {
	content, _ := os.ReadFile(t.RC)
	if strings.Contains(string(content), strings.TrimSpace(t.SourceLine)) {
		return false, nil
	}
	f, err := os.OpenFile(t.RC, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return false, err
	}
	defer f.Close()
	if _, err := f.WriteString(t.SourceLine); err != nil {
		return false, err
	}
	return true, nil
}

func writeCompletion(shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return rootCmd.GenBashCompletion(w)
	case "zsh":
		return rootCmd.GenZshCompletion(w)
	case "fish":
		return rootCmd.GenFishCompletion(w, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(w)
	}
	return fmt.Errorf("unsupported shell %q", shell)
}

func detectShell(shell string) string {
	for _, name := range []string{"zsh", "bash", "fish"} {
		if strings.Contains(shell, name) {
			return name
		}
	}
	return ""
}

func init() {
	completionCmd.AddCommand(completionInstallCmd)
	rootCmd.AddCommand(completionCmd)
}
