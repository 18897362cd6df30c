package css

import (
	"strings"

	"sitetidy/internal/rewrite"
)

// CleanResult is the outcome of removing unused rules
type CleanResult struct {
	Output  string
	Used    []Rule
	Unused  []Rule
	Removed int // unused rules actually cut from the output
}

// Skipped returns how many unused rules could not be cut from the source
// text because a comment sits inside them. They are left in place.
func (r CleanResult) Skipped() int {
	return len(r.Unused) - r.Removed
}

// RemoveUnused drops every non-empty rule that a does not consider used.
// Rules are found with comments masked out and then cut from source itself,
// so comments (including commented-out copies of a rule) and spacing between
// rules are preserved verbatim.
func RemoveUnused(source string, u *Usage, a Analyzer) CleanResult {
	var result CleanResult
	var edits []rewrite.Edit
	removals := make(map[int]bool)

	masked := MaskComments(source)
	for r := range Rules(masked) {
		if r.Body == "" {
			continue
		}

		// Leading whitespace may hold a masked comment
		match := strings.TrimLeft(r.Text, " \t\r\n\f")
		if a.Used(r.Selector, u) {
			result.Used = append(result.Used, r)
			edits = append(edits, rewrite.Edit{Match: match, Replacement: match})
			continue
		}

		result.Unused = append(result.Unused, r)
		removals[len(edits)] = true
		edits = append(edits, rewrite.Edit{Match: match})
	}

	output, applied := rewrite.Apply(source, masked, edits)
	result.Output = output
	for i, ok := range applied {
		if ok && removals[i] {
			result.Removed++
		}
	}
	return result
}
