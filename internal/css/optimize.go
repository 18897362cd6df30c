package css

import (
	"strings"
	"unicode"
)

// RemoveEmptyRules drops every rule whose body is empty or whitespace and
// returns the new text and the number of rules dropped.
func RemoveEmptyRules(text string) (string, int) {
	n := len(emptyRulePattern.FindAllStringIndex(text, -1))
	return emptyRulePattern.ReplaceAllString(text, ""), n
}

// OptimizeProperties rewrites each rule with its repeated properties
// collapsed, one declaration per line. A rule with no parseable declaration
// is removed. Text between rules is kept.
func OptimizeProperties(text string) string {
	var b strings.Builder
	pos := 0
	for r := range Rules(text) {
		b.WriteString(text[pos:r.Start])
		pos = r.End

		if len(r.Declarations) == 0 {
			continue
		}
		selector := strings.TrimRightFunc(r.Raw, unicode.IsSpace)
		b.WriteString(selector + " {\n  " + FormatDeclarations(r.Declarations, "  ") + "\n}")
	}
	b.WriteString(text[pos:])
	return b.String()
}

// Dedupe merges rules that share a SelectorKey. The merged rule sits where
// the first occurrence was and carries the last occurrence's body. Rules with
// an empty selector or body are dropped. The second result lists each
// duplicate key once per extra occurrence, in the order found.
func Dedupe(rules []Rule) ([]Rule, []string) {
	var out []Rule
	var duplicates []string
	index := make(map[string]int)

	for _, r := range rules {
		key := r.Key()
		if key == "" || r.Body == "" {
			continue
		}
		if i, ok := index[key]; ok {
			duplicates = append(duplicates, key)
			out[i].Body = r.Body
			out[i].Declarations = r.Declarations
			continue
		}
		index[key] = len(out)
		out = append(out, r)
	}

	return out, duplicates
}

// DedupeText scans text, dedupes its rules and renders them as
// "selector {\n  body\n}\n\n". Anything outside a rule is not kept.
func DedupeText(text string) (string, []string) {
	rules, duplicates := Dedupe(ScanRules(text))
	return Render(rules), duplicates
}

// Render writes rules back out with their bodies as they are
func Render(rules []Rule) string {
	var b strings.Builder
	for _, r := range rules {
		b.WriteString(strings.Join(strings.Fields(r.Selector), " "))
		b.WriteString(" {\n  ")
		b.WriteString(r.Body)
		b.WriteString("\n}\n\n")
	}
	return b.String()
}

// Pretty reformats text as "selector {\n  prop: value;\n}\n\n" per rule.
// Comments swept in front of a selector go on their own line and stray
// text between rules (such as at-rule wrappers the scanner cannot see
// into) is kept on its own line. Pretty(Pretty(x)) == Pretty(x).
func Pretty(text string) string {
	collapsed := whitespace.ReplaceAllString(text, " ")

	var b strings.Builder
	pos := 0
	for r := range Rules(collapsed) {
		if gap := strings.TrimSpace(collapsed[pos:r.Start]); gap != "" {
			b.WriteString(gap + "\n")
		}
		pos = r.End

		comments, selector := splitLeadingComments(r.Selector)
		if comments != "" {
			b.WriteString(comments + "\n")
		}
		b.WriteString(selector + " {\n")
		if decls := prettyDeclarations(r.Body); decls != "" {
			b.WriteString("  " + decls + "\n")
		}
		b.WriteString("}\n\n")
	}
	if rest := strings.TrimSpace(collapsed[pos:]); rest != "" {
		b.WriteString(rest + "\n")
	}

	return extraNewlines.ReplaceAllString(b.String(), "\n\n")
}

// prettyDeclarations splits a body on semicolons and writes every
// declaration as "prop: value;".
func prettyDeclarations(body string) string {
	var parts []string
	for _, decl := range strings.Split(body, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		if prop, value, ok := strings.Cut(decl, ":"); ok {
			decl = strings.TrimSpace(prop) + ": " + strings.TrimSpace(value)
		}
		parts = append(parts, decl+";")
	}
	return strings.Join(parts, "\n  ")
}

// OptimizeOptions toggles the optional passes of Optimize
type OptimizeOptions struct {
	Organize bool
}

// OptimizeResult is the outcome of Optimize
type OptimizeResult struct {
	Output       string
	EmptyRemoved int
	Duplicates   []string
	Rules        int
}

// Optimize runs the full stylesheet pass: empty rules are removed, repeated
// properties collapsed, duplicate selectors merged and the result
// pretty-printed. With Organize set the merged rules are grouped into
// sections before printing.
func Optimize(text string, opts OptimizeOptions) OptimizeResult {
	var result OptimizeResult

	text, result.EmptyRemoved = RemoveEmptyRules(text)
	text = OptimizeProperties(text)

	rules, duplicates := Dedupe(ScanRules(text))
	result.Duplicates = duplicates
	result.Rules = len(rules)

	if opts.Organize {
		text = Organize(rules)
	} else {
		text = Render(rules)
	}

	result.Output = Pretty(text)
	return result
}
