// Package css removes, merges and reformats stylesheet rules using a shallow
// pattern scanner instead of a parser.
package css

import (
	"iter"
	"regexp"
	"slices"
	"strings"
)

// rulePattern matches a selector-looking prefix followed by the first brace
// pair that has no brace inside it. It is a single-level scanner: for
// "@media q { .a { x: y } }" the leftmost match is " .a { x: y }", so the
// at-rule prefix and its closing brace are left outside every rule. Callers
// that copy the text between rules keep the wrapper; callers that rebuild
// from rules alone lose it and promote the inner rule to top level.
var rulePattern = regexp.MustCompile(`([^{}]+)\s*\{([^{}]*)\}`)

var (
	commentPattern   = regexp.MustCompile(`/\*[\s\S]*?\*/`)
	emptyRulePattern = regexp.MustCompile(`[^{}]+\{\s*\}`)
	whitespace       = regexp.MustCompile(`\s+`)
	extraNewlines    = regexp.MustCompile(`\n{3,}`)
)

// Rule is one "selector { body }" span found by the scanner
type Rule struct {
	Raw          string // selector text exactly as matched, surrounding whitespace included
	Selector     string // Raw trimmed
	Body         string // declaration block trimmed, braces excluded
	Declarations []Declaration
	Start, End   int    // byte offsets of the span in the scanned text
	Text         string // the whole span
}

// Key returns the rule's deduplication identity
func (r Rule) Key() string {
	return SelectorKey(r.Selector)
}

// Rules scans text lazily and yields every rule span in document order.
// Ranging over the result again restarts the scan.
func Rules(text string) iter.Seq[Rule] {
	return func(yield func(Rule) bool) {
		pos := 0
		for pos < len(text) {
			loc := rulePattern.FindStringSubmatchIndex(text[pos:])
			if loc == nil {
				return
			}

			raw := text[pos+loc[2] : pos+loc[3]]
			body := strings.TrimSpace(text[pos+loc[4] : pos+loc[5]])
			r := Rule{
				Raw:          raw,
				Selector:     strings.TrimSpace(raw),
				Body:         body,
				Declarations: ParseDeclarations(body),
				Start:        pos + loc[0],
				End:          pos + loc[1],
				Text:         text[pos+loc[0] : pos+loc[1]],
			}
			if !yield(r) {
				return
			}
			pos += loc[1]
		}
	}
}

// ScanRules collects Rules(text)
func ScanRules(text string) []Rule {
	return slices.Collect(Rules(text))
}

// MaskComments blanks out /* ... */ comments with spaces, keeping newlines,
// so every offset in the result matches text
func MaskComments(text string) string {
	return commentPattern.ReplaceAllStringFunc(text, func(c string) string {
		b := []byte(c)
		for i := range b {
			if b[i] != '\n' {
				b[i] = ' '
			}
		}
		return string(b)
	})
}

// SelectorKey collapses whitespace runs to a single space and ignores any
// comments written in front of the selector.
func SelectorKey(selector string) string {
	_, sel := splitLeadingComments(selector)
	return strings.Join(strings.Fields(sel), " ")
}

// splitLeadingComments separates comments that the scanner swept into a
// selector (everything up to the last "*/") from the selector itself.
func splitLeadingComments(selector string) (comments, rest string) {
	idx := strings.LastIndex(selector, "*/")
	if idx == -1 || !strings.Contains(selector[:idx], "/*") {
		return "", strings.TrimSpace(selector)
	}
	return strings.TrimSpace(selector[:idx+2]), strings.TrimSpace(selector[idx+2:])
}
