package rewrite

import "strings"

// Edit replaces one occurrence of Match with Replacement. An empty
// Replacement removes the span.
type Edit struct {
	Match       string
	Replacement string
}

// Apply substitutes edits into original in order. Each Match is searched for
// starting at the end of the previous substitution, never before it, so an
// identical span earlier in the text is not mistaken for a later one. Text
// between spans is copied verbatim; an edit whose Match is not found is
// skipped and the text stays as it was. Apply returns the output and, per
// edit, whether it was applied.
//
// Matches are searched for in searchable, a copy of original of the same
// length in which regions that must never match (comments, say) are blanked
// out. A match whose span in original differs from searchable overlaps such
// a region and is skipped. Pass original twice when nothing is masked.
func Apply(original, searchable string, edits []Edit) (string, []bool) {
	if len(searchable) != len(original) {
		searchable = original
	}

	var b strings.Builder
	b.Grow(len(original))

	pos := 0
	applied := make([]bool, len(edits))
	for i, e := range edits {
		if e.Match == "" {
			continue
		}
		idx := strings.Index(searchable[pos:], e.Match)
		if idx == -1 {
			continue
		}
		start := pos + idx
		end := start + len(e.Match)
		if original[start:end] != e.Match {
			continue
		}
		b.WriteString(original[pos:start])
		b.WriteString(e.Replacement)
		pos = end
		applied[i] = true
	}
	b.WriteString(original[pos:])

	return b.String(), applied
}

// Count returns how many edits were applied
func Count(applied []bool) int {
	n := 0
	for _, ok := range applied {
		if ok {
			n++
		}
	}
	return n
}
