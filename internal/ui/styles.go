package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	// Colors
	Primary   = lipgloss.Color("#0EA5E9") // Sky
	Secondary = lipgloss.Color("#3B82F6") // Blue
	Success   = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray

	// Styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary).
			MarginBottom(1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	InfoStyle = lipgloss.NewStyle().
			Foreground(Secondary)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))
)

// Banner returns the sitetidy banner
func Banner() string {
	banner := `
 █▀▀ ▀█▀ ▀█▀ █▀▀ ▀█▀ ▀█▀ █▀▄ █ █
 ▀▀█  █   █  █▀▀  █   █  █ █  █
 ▀▀▀ ▀▀▀  ▀  ▀▀▀  ▀  ▀▀▀ ▀▀   ▀`
	return TitleStyle.Render(banner)
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	fmt.Println(SuccessStyle.Render("✓ " + fmt.Sprintf(format, args...)))
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	fmt.Println(InfoStyle.Render("• " + fmt.Sprintf(format, args...)))
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	fmt.Println(ErrorStyle.Render("✗ " + fmt.Sprintf(format, args...)))
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	fmt.Println(WarningStyle.Render("⚠ " + fmt.Sprintf(format, args...)))
}

// PrintKeyValue prints a key-value pair
func PrintKeyValue(key, value string) {
	fmt.Printf("  %s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

// PrintList prints up to limit items, followed by a count of the rest.
func PrintList(items []string, limit int) {
	for i, item := range items {
		if limit > 0 && i == limit {
			fmt.Println(MutedStyle.Render(fmt.Sprintf("    ... and %d more", len(items)-limit)))
			return
		}
		fmt.Println(MutedStyle.Render("    - " + item))
	}
}

// SizeLine formats a byte count as "1234 bytes (1.2 kB)".
func SizeLine(n int) string {
	return fmt.Sprintf("%d bytes (%s)", n, humanize.Bytes(uint64(n)))
}

// PrintSize prints the before/after/reduction block shared by every operation.
func PrintSize(label string, original, updated, reduction int, percent float64) {
	PrintKeyValue(label+" original", SizeLine(original))
	PrintKeyValue(label+" new", SizeLine(updated))
	PrintKeyValue(label+" reduction", fmt.Sprintf("%d bytes (%.1f%%)", reduction, percent))
}

// Divider returns a divider line
func Divider() string {
	return MutedStyle.Render("─────────────────────────────────────────")
}

// VersionLine returns the styled version line used in the banner block
func VersionLine(version string) string {
	return ValueStyle.Render(" Version: " + version)
}

// PrintVersion prints the version
func PrintVersion(version string) {
	fmt.Println(VersionLine(version))
}

// PrintHeader prints the standard header
func PrintHeader(version string) {
	fmt.Println()
	fmt.Println(Divider())
	fmt.Println(Banner())
	PrintVersion(version)
	fmt.Println()
	fmt.Println(Divider())
	fmt.Println()
}
