package js

import (
	"regexp"
	"strings"

	"sitetidy/internal/minify"
)

var (
	blockCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)
	blankLinePattern    = regexp.MustCompile(`\n\s*\n`)
)

// Optimize strips comments, trailing whitespace and blank lines from
// extracted code while keeping one statement layout per line.
func Optimize(code string) string {
	code = blockCommentPattern.ReplaceAllString(code, "")
	code = minify.StripLineComments(code)

	lines := strings.Split(code, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	code = strings.Join(lines, "\n")

	return blankLinePattern.ReplaceAllString(code, "\n")
}
