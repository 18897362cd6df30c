package css

import (
	"regexp"
	"strings"
)

var (
	classAttr = regexp.MustCompile(`(?i)class=["']([^"']*)["']`)
	idAttr    = regexp.MustCompile(`(?i)id=["']([^"']*)["']`)

	pseudoClass   = regexp.MustCompile(`:[a-zA-Z-]+(\([^)]*\))?`)
	pseudoElement = regexp.MustCompile(`::[a-zA-Z-]+`)
	classToken    = regexp.MustCompile(`\.([a-zA-Z0-9_-]+)`)
	idToken       = regexp.MustCompile(`#([a-zA-Z0-9_-]+)`)
	elementToken  = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*(\s|$)`)
)

// Usage is the set of class and id names seen in the HTML corpus
type Usage struct {
	Classes map[string]struct{}
	IDs     map[string]struct{}
}

// NewUsage returns an empty Usage
func NewUsage() *Usage {
	return &Usage{
		Classes: make(map[string]struct{}),
		IDs:     make(map[string]struct{}),
	}
}

// Add records the class and id attribute values of one HTML document
func (u *Usage) Add(html string) {
	for _, m := range classAttr.FindAllStringSubmatch(html, -1) {
		for _, class := range strings.Fields(m[1]) {
			u.Classes[class] = struct{}{}
		}
	}
	for _, m := range idAttr.FindAllStringSubmatch(html, -1) {
		if id := strings.TrimSpace(m[1]); id != "" {
			u.IDs[id] = struct{}{}
		}
	}
}

// HasClass reports whether class was seen
func (u *Usage) HasClass(class string) bool {
	_, ok := u.Classes[class]
	return ok
}

// HasID reports whether id was seen
func (u *Usage) HasID(id string) bool {
	_, ok := u.IDs[id]
	return ok
}

// Analyzer decides whether a selector is used by a corpus
type Analyzer struct {
	// KeepElements are matched as lower-case substrings of the whole
	// selector, not as tokens: ".tablet" is kept because it contains
	// "table", and any selector containing the letter "a" is kept by "a".
	KeepElements []string
}

// Used applies the rules in order, first match wins:
//  1. a selector containing ":" or "@" is used
//  2. a selector containing a keep-list entry is used
//  3. each comma-separated branch is checked; any used branch is enough
//  4. a branch with a known .class or #id is used
//  5. a branch starting with a bare element name is used
//  6. anything else is unused
func (a Analyzer) Used(selector string, u *Usage) bool {
	if strings.ContainsAny(selector, ":@") {
		return true
	}

	lower := strings.ToLower(selector)
	for _, keep := range a.KeepElements {
		if strings.Contains(lower, strings.ToLower(keep)) {
			return true
		}
	}

	for _, branch := range strings.Split(selector, ",") {
		if a.branchUsed(strings.TrimSpace(branch), u) {
			return true
		}
	}

	return false
}

func (a Analyzer) branchUsed(branch string, u *Usage) bool {
	clean := pseudoClass.ReplaceAllString(branch, "")
	clean = pseudoElement.ReplaceAllString(clean, "")

	for _, m := range classToken.FindAllStringSubmatch(clean, -1) {
		if u.HasClass(m[1]) {
			return true
		}
	}
	for _, m := range idToken.FindAllStringSubmatch(clean, -1) {
		if u.HasID(m[1]) {
			return true
		}
	}

	return elementToken.MatchString(strings.TrimSpace(clean))
}
