package minify

import (
	"regexp"
	"strings"
)

var (
	blockComment = regexp.MustCompile(`/\*[\s\S]*?\*/`)
	whitespace   = regexp.MustCompile(`\s+`)
	semicolons   = regexp.MustCompile(`;+}`)
)

// Regex is a pattern-based minifier. It does not parse its input: it strips
// comments, collapses whitespace and drops the whitespace around a fixed set
// of characters. Running it on its own output changes nothing.
type Regex struct {
	// Punctuation and Operators are the characters whose surrounding
	// whitespace is removed.
	Punctuation string
	Operators   string
	// LineComments switches to JavaScript comment handling: // and /* */
	// comments are stripped only outside string, template and regular
	// expression literals.
	LineComments bool
	// TrimSemicolons drops semicolons directly before a closing brace
	TrimSemicolons bool

	around *regexp.Regexp
}

// Presets
var (
	CSS        = NewRegex("{};,:", "", false, true)
	JS         = NewRegex("{}();,:", "=+-*/", true, false)
	JSExtended = NewRegex("{}();,:", "=+-*/!<>", true, true)
)

// NewRegex builds a Regex minifier
func NewRegex(punctuation, operators string, lineComments, trimSemicolons bool) *Regex {
	r := &Regex{
		Punctuation:    punctuation,
		Operators:      operators,
		LineComments:   lineComments,
		TrimSemicolons: trimSemicolons,
	}
	r.around = regexp.MustCompile(`\s*(` + charClass(punctuation+operators) + `)\s*`)
	return r
}

// charClass escapes every character so none of them forms a range
func charClass(chars string) string {
	var b strings.Builder
	b.WriteByte('[')
	for _, c := range chars {
		if c < 0x80 && !isAlnum(byte(c)) {
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	b.WriteByte(']')
	return b.String()
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// Minify implements Engine
func (r *Regex) Minify(source string) (string, error) {
	return r.Apply(source), nil
}

// Apply minifies source
func (r *Regex) Apply(source string) string {
	var result string
	if r.LineComments {
		result = stripJSComments(source, true)
	} else {
		result = blockComment.ReplaceAllString(source, "")
	}

	result = whitespace.ReplaceAllString(result, " ")
	result = r.around.ReplaceAllString(result, "$1")

	if r.TrimSemicolons {
		result = semicolons.ReplaceAllString(result, "}")
	}

	if r.LineComments {
		result = separateCommentMarkers(result)
	}

	return strings.TrimSpace(result)
}

// StripLineComments removes // comments that start outside string, template
// and regular expression literals. The newline ending each comment is kept.
func StripLineComments(source string) string {
	return stripJSComments(source, false)
}

// stripJSComments drops line comments, and block comments too when blocks
// is set
func stripJSComments(source string, blocks bool) string {
	var b strings.Builder
	b.Grow(len(source))

	pos := 0
	scanJSComments(source, func(start, end int, block bool) bool {
		if block && !blocks {
			return true
		}
		b.WriteString(source[pos:start])
		pos = end
		return true
	})
	b.WriteString(source[pos:])

	return b.String()
}

// separateCommentMarkers puts a space inside every "//" or "/*" that
// whitespace removal created outside a literal, as in "a / /re/", so the
// output does not read as a comment on the next pass.
func separateCommentMarkers(s string) string {
	for {
		start := findJSCommentStart(s)
		if start == -1 {
			return s
		}
		s = s[:start+1] + " " + s[start+1:]
	}
}

func findJSCommentStart(src string) int {
	found := -1
	scanJSComments(src, func(start, _ int, _ bool) bool {
		found = start
		return false
	})
	return found
}

// Keywords after which a slash starts a regular expression
var regexKeywords = map[string]bool{
	"return": true, "typeof": true, "case": true, "do": true, "else": true,
	"in": true, "of": true, "new": true, "delete": true, "void": true,
	"throw": true, "instanceof": true, "yield": true, "await": true,
}

// scanJSComments reports every comment in src that sits outside string,
// template and regular expression literals. A line comment ends before its
// newline. Scanning stops when fn returns false.
//
// A slash starts a regular expression when it follows an operator, an
// opening bracket, a separator, one of regexKeywords or nothing at all;
// anywhere else it is division.
func scanJSComments(src string, fn func(start, end int, block bool) bool) {
	var (
		quote     byte // ' " or ` while inside a string
		regex     bool
		class     bool // inside [...] of a regular expression
		escaped   bool
		prev      byte // last significant byte outside literals
		wordStart int
		wordEnd   = -1
	)

	for i := 0; i < len(src); i++ {
		c := src[i]

		switch {
		case quote != 0:
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == quote, c == '\n' && quote != '`':
				quote = 0
				prev = '"'
			}

		case regex:
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '\n':
				regex, class = false, false
				prev = ')'
			case class:
				if c == ']' {
					class = false
				}
			case c == '[':
				class = true
			case c == '/':
				regex = false
				prev = ')'
			}

		case c == '\'' || c == '"' || c == '`':
			quote = c

		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			end := strings.IndexByte(src[i:], '\n')
			if end == -1 {
				end = len(src)
			} else {
				end += i
			}
			if !fn(i, end, false) {
				return
			}
			i = end - 1

		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			if end == -1 {
				end = len(src)
			} else {
				end += i + 4
			}
			if !fn(i, end, true) {
				return
			}
			i = end - 1

		case c == '/' && regexAllowed(prev, src, wordStart, wordEnd):
			regex = true

		case c == ' ', c == '\t', c == '\n', c == '\r', c == '\f', c == '\v':

		default:
			if isIdentByte(c) {
				if wordEnd != i {
					wordStart = i
				}
				wordEnd = i + 1
			}
			prev = c
		}
	}
}

func regexAllowed(prev byte, src string, wordStart, wordEnd int) bool {
	if prev == 0 || strings.IndexByte("(,=:[!&|?{};+-*%<>~^/", prev) >= 0 {
		return true
	}
	return isIdentByte(prev) && wordEnd > wordStart && regexKeywords[src[wordStart:wordEnd]]
}

func isIdentByte(c byte) bool {
	return isAlnum(c) || c == '_' || c == '$' || c >= 0x80
}
