package css

import (
	"regexp"
	"strings"
)

// Section is a named group of rules in an organized stylesheet
type Section struct {
	Name     string
	Header   string
	Patterns []*regexp.Regexp
}

// Sections are tried in order; the first section with a matching pattern
// takes the rule. Rules matching none land in "utilities".
var Sections = []Section{
	{Name: "reset", Header: "/* === RESET & BASE === */", Patterns: compile(`^\*\s*$`, `^html\s*$`, `^body\s*$`, `box-sizing`)},
	{Name: "base", Header: "/* === BASE ELEMENTS === */", Patterns: compile(`^[a-z]+\s*$`, `^h[1-6]\s*$`)},
	{Name: "layout", Header: "/* === LAYOUT === */", Patterns: compile(`\.header`, `\.footer`, `\.nav`, `\.main`, `\.container`)},
	{Name: "components", Header: "/* === COMPONENTS === */", Patterns: compile(`\.btn`, `\.card`, `\.modal`, `\.dropdown`)},
	{Name: "utilities", Header: "/* === UTILITIES === */"},
	{Name: "responsive", Header: "/* === RESPONSIVE === */", Patterns: compile(`@media`)},
}

const fallbackSection = "utilities"

func compile(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(`(?i)` + p)
	}
	return res
}

// Classify returns the name of the section a selector belongs to
func Classify(selector string) string {
	key := SelectorKey(selector)
	for _, s := range Sections {
		for _, p := range s.Patterns {
			if p.MatchString(key) {
				return s.Name
			}
		}
	}
	return fallbackSection
}

// Organize renders rules grouped by section, each non-empty section
// preceded by its header comment.
func Organize(rules []Rule) string {
	grouped := make(map[string][]Rule)
	for _, r := range rules {
		name := Classify(r.Selector)
		grouped[name] = append(grouped[name], r)
	}

	var b strings.Builder
	for _, s := range Sections {
		if len(grouped[s.Name]) == 0 {
			continue
		}
		b.WriteString("\n" + s.Header + "\n")
		b.WriteString(Render(grouped[s.Name]))
	}
	return b.String()
}
