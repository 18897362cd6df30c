package js

import (
	"fmt"
	"regexp"
	"strings"
)

// DuplicateGroup lists every source holding one repeated block
type DuplicateGroup struct {
	Hash    string
	Sources []string
}

// Dedup is the result of removing repeated script blocks
type Dedup struct {
	Unique     []ScriptBlock
	Duplicates []DuplicateGroup
	Total      int
}

// Removed is the number of blocks dropped as repeats
func (d Dedup) Removed() int {
	return d.Total - len(d.Unique)
}

// Dedupe keeps the first block seen for each content hash, in input order.
// Groups for hashes seen more than once are reported in first-seen order.
func Dedupe(blocks []ScriptBlock) Dedup {
	d := Dedup{Total: len(blocks)}

	sources := make(map[string][]string)
	var order []string
	for _, b := range blocks {
		if _, ok := sources[b.Hash]; !ok {
			order = append(order, b.Hash)
			d.Unique = append(d.Unique, b)
		}
		sources[b.Hash] = append(sources[b.Hash], b.Source)
	}

	for _, h := range order {
		if len(sources[h]) > 1 {
			d.Duplicates = append(d.Duplicates, DuplicateGroup{Hash: h, Sources: sources[h]})
		}
	}
	return d
}

// Bucket is where a block lands in the consolidated file
type Bucket int

const (
	BucketFunctions Bucket = iota
	BucketOther
	BucketEvents
	BucketDOMReady
)

var bucketHeaders = map[Bucket]string{
	BucketFunctions: "/* === FUNCTION DEFINITIONS === */\n",
	BucketOther:     "/* === OTHER CODE === */\n",
	BucketEvents:    "/* === EVENT LISTENERS === */\n",
	BucketDOMReady:  "/* === DOM READY === */\n",
}

func (b Bucket) String() string {
	switch b {
	case BucketFunctions:
		return "functions"
	case BucketEvents:
		return "events"
	case BucketDOMReady:
		return "dom_ready"
	default:
		return "other"
	}
}

// Classifier assigns blocks to buckets by content signature. The first rule
// that matches wins: DOM ready, then function, then event.
type Classifier struct {
	DOMReady string
	Function *regexp.Regexp
	Event    string

	wrapper *regexp.Regexp
}

// NewClassifier compiles the signatures. function is a regular expression;
// domReady and event are plain substrings.
func NewClassifier(domReady, function, event string) (*Classifier, error) {
	fn, err := regexp.Compile(function)
	if err != nil {
		return nil, fmt.Errorf("invalid function signature %q: %w", function, err)
	}
	wrapper := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(domReady) + `["'],\s*function\s*\(\s*\)\s*\{(.*?)\}\s*\);`)
	return &Classifier{DOMReady: domReady, Function: fn, Event: event, wrapper: wrapper}, nil
}

// Classify returns the bucket for content
func (c *Classifier) Classify(content string) Bucket {
	switch {
	case strings.Contains(content, c.DOMReady):
		return BucketDOMReady
	case c.Function.MatchString(content):
		return BucketFunctions
	case strings.Contains(content, c.Event):
		return BucketEvents
	default:
		return BucketOther
	}
}

// Unwrap returns the dedented body of the first DOM ready handler in content
func (c *Classifier) Unwrap(content string) (string, bool) {
	m := c.wrapper.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return dedent(m[1]), true
}

// Consolidation is the merged script and how it was assembled
type Consolidation struct {
	Output string
	Counts map[Bucket]int
	// DOM ready blocks whose handler could not be located; emitted verbatim
	// with the other code.
	Unwrapped []ScriptBlock
}

// Consolidate merges unique blocks into one script: function definitions,
// other code, event listeners, and finally one DOM ready handler holding
// the bodies of every DOM ready block.
func (c *Classifier) Consolidate(unique []ScriptBlock) Consolidation {
	res := Consolidation{Counts: make(map[Bucket]int)}
	buckets := make(map[Bucket][]string)

	for _, b := range unique {
		bucket := c.Classify(b.Content)
		res.Counts[bucket]++

		if bucket != BucketDOMReady {
			buckets[bucket] = append(buckets[bucket], b.Content)
			continue
		}
		body, ok := c.Unwrap(b.Content)
		if !ok {
			res.Unwrapped = append(res.Unwrapped, b)
			buckets[BucketOther] = append(buckets[BucketOther], b.Content)
			continue
		}
		buckets[BucketDOMReady] = append(buckets[BucketDOMReady], body)
	}

	var out strings.Builder
	for _, bucket := range []Bucket{BucketFunctions, BucketOther, BucketEvents} {
		if len(buckets[bucket]) == 0 {
			continue
		}
		out.WriteString(bucketHeaders[bucket])
		for _, content := range buckets[bucket] {
			out.WriteString(content + "\n\n")
		}
	}

	if bodies := buckets[BucketDOMReady]; len(bodies) > 0 {
		out.WriteString(bucketHeaders[BucketDOMReady])
		fmt.Fprintf(&out, "document.addEventListener('%s', function() {\n", c.DOMReady)
		out.WriteString(strings.Join(bodies, "\n\n"))
		out.WriteString("\n});\n")
	}

	res.Output = out.String()
	return res
}

// dedent drops surrounding blank lines and removes the smallest leading
// indentation shared by the non-blank lines.
func dedent(s string) string {
	lines := strings.Split(strings.TrimRight(s, " \t\r\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}

	shared := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if shared < 0 || indent < shared {
			shared = indent
		}
	}

	for i, line := range lines {
		switch {
		case strings.TrimSpace(line) == "":
			lines[i] = ""
		case shared > 0:
			lines[i] = line[shared:]
		}
	}
	return strings.Join(lines, "\n")
}

var (
	declPattern          = regexp.MustCompile(`\b(?:const|let|var)\s+(\w+)\s*=`)
	emptyFunctionPattern = regexp.MustCompile(`function\s+\w+\s*\(\s*\)\s*\{\s*\}`)
	blankRunPattern      = regexp.MustCompile(`\n\s*\n\s*\n`)
)

// TidyResult is the output of Tidy
type TidyResult struct {
	Output         string
	DuplicateVars  []string
	EmptyFunctions int
}

// Tidy reports names declared more than once, removes empty parameterless
// function declarations and collapses runs of blank lines. Duplicate
// declarations are reported only; removing one could change behavior.
func Tidy(code string) TidyResult {
	var res TidyResult

	seen := make(map[string]bool)
	reported := make(map[string]bool)
	for _, m := range declPattern.FindAllStringSubmatch(code, -1) {
		name := m[1]
		if seen[name] && !reported[name] {
			res.DuplicateVars = append(res.DuplicateVars, name)
			reported[name] = true
		}
		seen[name] = true
	}

	res.EmptyFunctions = len(emptyFunctionPattern.FindAllStringIndex(code, -1))
	code = emptyFunctionPattern.ReplaceAllString(code, "")
	res.Output = blankRunPattern.ReplaceAllString(code, "\n\n")

	return res
}
