package js

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"sitetidy/internal/corpus"
)

const ident = `[a-zA-Z_$][a-zA-Z0-9_$]*`

var (
	functionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`function\s+(` + ident + `)\s*\(`),
		regexp.MustCompile(`const\s+(` + ident + `)\s*=\s*function`),
		regexp.MustCompile(`let\s+(` + ident + `)\s*=\s*function`),
		regexp.MustCompile(`var\s+(` + ident + `)\s*=\s*function`),
		regexp.MustCompile(`(` + ident + `)\s*:\s*function`),
		regexp.MustCompile(`(` + ident + `)\s*=\s*\([^)]*\)\s*=>`),
	}

	variablePattern = regexp.MustCompile(`(?:var|let|const)\s+(` + ident + `)`)

	// A name followed by "(" that is not a "function name(" declaration
	callPattern = regexp.MustCompile(`(function\s+)?(` + ident + `)\s*\(`)

	identPattern = regexp.MustCompile(ident)

	domQueryPatterns = []*regexp.Regexp{
		regexp.MustCompile(`getElementById\s*\(\s*["']([^"']+)["']\s*\)`),
		regexp.MustCompile(`querySelector\s*\(\s*["']([^"']+)["']\s*\)`),
		regexp.MustCompile(`querySelectorAll\s*\(\s*["']([^"']+)["']\s*\)`),
		regexp.MustCompile(`getElementsByClassName\s*\(\s*["']([^"']+)["']\s*\)`),
		regexp.MustCompile(`getElementsByTagName\s*\(\s*["']([^"']+)["']\s*\)`),
	}

	listenerPattern = regexp.MustCompile(`addEventListener\s*\(\s*["']([^"']+)["']`)
)

// Symbol tracks whether a name is declared and whether it is used anywhere
type Symbol struct {
	Declared   bool `json:"declared"`
	Referenced bool `json:"referenced"`
}

// SymbolTable maps names to their symbol state
type SymbolTable map[string]*Symbol

func (t SymbolTable) declare(name string) {
	if s, ok := t[name]; ok {
		s.Declared = true
		return
	}
	t[name] = &Symbol{Declared: true}
}

// Analysis is the symbol inventory of a body of script code
type Analysis struct {
	Functions      SymbolTable
	Variables      SymbolTable
	DOMQueries     []string
	EventListeners []string
}

// Analyze scans code for function and variable declarations, calls, DOM
// queries and event listener registrations. It is pattern based: names inside
// strings or comments count too.
func Analyze(code string) Analysis {
	a := Analysis{
		Functions: make(SymbolTable),
		Variables: make(SymbolTable),
	}

	for _, p := range functionPatterns {
		for _, m := range p.FindAllStringSubmatch(code, -1) {
			a.Functions.declare(m[1])
		}
	}
	for _, m := range callPattern.FindAllStringSubmatch(code, -1) {
		if m[1] != "" {
			continue
		}
		if s, ok := a.Functions[m[2]]; ok {
			s.Referenced = true
		}
	}

	declarations := make(map[string]int)
	for _, m := range variablePattern.FindAllStringSubmatch(code, -1) {
		a.Variables.declare(m[1])
		declarations[m[1]]++
	}
	occurrences := make(map[string]int)
	for _, name := range identPattern.FindAllString(code, -1) {
		occurrences[name]++
	}
	for name, s := range a.Variables {
		s.Referenced = occurrences[name] > declarations[name]
	}

	a.DOMQueries = collect(code, domQueryPatterns...)
	a.EventListeners = collect(code, listenerPattern)

	return a
}

// collect returns the first group of every match, unique, in first-seen order
func collect(code string, patterns ...*regexp.Regexp) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range patterns {
		for _, m := range p.FindAllStringSubmatch(code, -1) {
			if seen[m[1]] {
				continue
			}
			seen[m[1]] = true
			out = append(out, m[1])
		}
	}
	return out
}

// UnusedFunctions lists declared functions that are never called, sorted.
// DOMContentLoaded is an event name, not a function, and never reported.
func (a Analysis) UnusedFunctions() []string {
	var unused []string
	for name, s := range a.Functions {
		if name == "DOMContentLoaded" || s.Referenced {
			continue
		}
		unused = append(unused, name)
	}
	sort.Strings(unused)
	return unused
}

// QueryUsed reports whether a DOM query string appears in any page as part of
// an id attribute, part of a class attribute, or as a tag name.
func QueryUsed(query string, docs []corpus.Document) bool {
	q := regexp.QuoteMeta(query)
	idAttr := regexp.MustCompile(`(?i)id=["'][^"']*` + q + `[^"']*["']`)
	classAttr := regexp.MustCompile(`(?i)class=["'][^"']*` + q + `[^"']*["']`)

	for _, doc := range docs {
		if idAttr.MatchString(doc.Content) || classAttr.MatchString(doc.Content) {
			return true
		}
		if strings.Contains(strings.ToLower(doc.Content), "<"+query) {
			return true
		}
	}
	return false
}

// UnusedDOMQueries returns the queries of a that QueryUsed rejects, sorted
func (a Analysis) UnusedDOMQueries(docs []corpus.Document) []string {
	var unused []string
	for _, q := range a.DOMQueries {
		if !QueryUsed(q, docs) {
			unused = append(unused, q)
		}
	}
	sort.Strings(unused)
	return unused
}

// Report is the JSON document written by the analyze command
type Report struct {
	Functions        SymbolTable `json:"functions"`
	Variables        SymbolTable `json:"variables"`
	DOMQueries       []string    `json:"dom_queries"`
	EventListeners   []string    `json:"event_listeners"`
	UnusedFunctions  []string    `json:"unused_functions"`
	UnusedDOMQueries []string    `json:"unused_dom_queries"`
	Recommendations  []string    `json:"recommendations"`
	Notes            []string    `json:"notes"`
}

// AdvisoryNote is attached to every report
const AdvisoryNote = "Unused functions are advisory only. Functions passed as callbacks, stored in objects or invoked as methods are not seen as calls; review every entry before deleting code."

// NewReport builds the report for a, checking DOM queries against docs
func NewReport(a Analysis, docs []corpus.Document) Report {
	r := Report{
		Functions:        a.Functions,
		Variables:        a.Variables,
		DOMQueries:       nonNil(a.DOMQueries),
		EventListeners:   nonNil(a.EventListeners),
		UnusedFunctions:  nonNil(a.UnusedFunctions()),
		UnusedDOMQueries: nonNil(a.UnusedDOMQueries(docs)),
		Recommendations:  []string{},
		Notes:            []string{AdvisoryNote},
	}

	if n := len(r.UnusedFunctions); n > 0 {
		r.Recommendations = append(r.Recommendations,
			fmt.Sprintf("Remove %d unused functions: %s", n, strings.Join(r.UnusedFunctions, ", ")))
	}
	if n := len(r.UnusedDOMQueries); n > 0 {
		r.Recommendations = append(r.Recommendations,
			fmt.Sprintf("Remove %d DOM queries for elements that don't exist: %s", n, strings.Join(r.UnusedDOMQueries, ", ")))
	}

	return r
}

// JSON renders the report with two-space indentation
func (r Report) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return append(data, '\n'), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
