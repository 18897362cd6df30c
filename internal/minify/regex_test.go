package minify

import "testing"

func TestCSS(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"comments", "/* header */\n.a { color: red; }\n/* multi\nline */", ".a{color:red}"},
		{"whitespace", ".a ,\n.b  {\n  margin : 0  auto ;\n  padding:0;\n}\n", ".a,.b{margin:0 auto;padding:0}"},
		{"double semicolon", ".a{color:red;;}", ".a{color:red}"},
		{"urls keep slashes", ".a { background: url(http://x.test/a.png); }", ".a{background:url(http://x.test/a.png)}"},
		{"descendant space kept", "nav  ul li { x: 1 }", "nav ul li{x:1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CSS.Apply(tt.input)
			if got != tt.expected {
				t.Errorf("CSS.Apply(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestJS(t *testing.T) {
	tests := []struct {
		name     string
		minifier *Regex
		input    string
		expected string
	}{
		{
			name:     "basic operators",
			minifier: JS,
			input:    "let a = b + c * 2; // sum\nif (a > 1) { go(a); }",
			expected: "let a=b+c*2;if(a > 1){go(a);}",
		},
		{
			name:     "extended operators",
			minifier: JSExtended,
			input:    "let a = b + c * 2; // sum\nif (a > 1) { go(a); }",
			expected: "let a=b+c*2;if(a>1){go(a)}",
		},
		{
			// Comment markers in strings survive, but whitespace inside
			// strings is still compacted: the minifier does not tokenize.
			name:     "strings",
			minifier: JS,
			input:    "var u = \"http://example.com\"; // trailing\nvar s = 'a // b';",
			expected: "var u=\"http://example.com\";var s='a//b';",
		},
		{
			name:     "block comments",
			minifier: JSExtended,
			input:    "/* doc */\nfunction f() {\n  return !x;\n}\n",
			expected: "function f(){return!x}",
		},
		{
			name:     "regex literal with quote",
			minifier: JS,
			input:    "function esc(s) {\n  return s.replace(/\"/g, '&quot;');\n}\nvar home = \"https://example.org/\";",
			expected: "function esc(s){return s.replace(/\"/g,'&quot;');}var home=\"https://example.org/\";",
		},
		{
			name:     "division before regex literal",
			minifier: JS,
			input:    "var r = total / /\\d+/.exec(s)[0];\nvar z = 1;",
			expected: "var r=total/ /\\d+/.exec(s)[0];var z=1;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.minifier.Apply(tt.input)
			if got != tt.expected {
				t.Errorf("Apply(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"/* a */ .nav , .menu > li { color : red ; margin: 0 -1px; }\n\n@media (max-width: 600px) { .a { b: c } }",
		"document.addEventListener('DOMContentLoaded', function () {\n  // init\n  const x = a / b;\n  if (!x || y < 3) { run(x, y); }\n});\n",
		"var s = \"keep // this\"; /* block */ let t = `tpl ${a + b}`;",
		"function esc(s) {\n  return s.replace(/\"/g, '&quot;');\n}\nvar home = \"https://example.org/\";",
		"var r = total / /\\d+/.exec(s)[0];\nvar z = 1;",
		"var p = a / *b; var q = c / /x/g.source.length;",
	}

	for _, m := range []*Regex{CSS, JS, JSExtended} {
		for _, in := range inputs {
			once := m.Apply(in)
			twice := m.Apply(once)
			if once != twice {
				t.Errorf("second pass changed output:\n once:  %q\n twice: %q", once, twice)
			}
		}
	}
}

func TestCharClassEscapesRanges(t *testing.T) {
	// "+-*" would be a range if "-" were not escaped
	m := NewRegex("", "+-*", false, false)
	if got := m.Apply("a , b - c"); got != "a , b-c" {
		t.Errorf("Apply() = %q, want %q", got, "a , b-c")
	}
}

func TestFindJSCommentStart(t *testing.T) {
	tests := []struct {
		line     string
		expected int
	}{
		{"x = 1; // c", 7},
		{"// whole line", 0},
		{`s = "a // b"`, -1},
		{`s = 'it\'s // x'`, -1},
		{"t = `//`; // c", 10},
		{"no comment", -1},
		{`s.replace(/"/g, '&quot;'); var u = "http://x"`, -1},
		{"x = a / b; // c", 11},
		{"return /'/.test(s) // c", 19},
		{"if (/[/]/.test(s)) /* c */", 19},
		{"a = b /* c */", 6},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := findJSCommentStart(tt.line); got != tt.expected {
				t.Errorf("findJSCommentStart(%q) = %d, want %d", tt.line, got, tt.expected)
			}
		})
	}
}

func TestStripLineComments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"keeps newline", "a(); // one\nb(); // two", "a(); \nb(); "},
		{"template spans lines", "var t = `a\n// kept`; // gone\nx()", "var t = `a\n// kept`; \nx()"},
		{"block comments untouched", "/* // */ a();", "/* // */ a();"},
		{"regex with slashes", "var re = /\\/\\//; // path", "var re = /\\/\\//; "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripLineComments(tt.input); got != tt.expected {
				t.Errorf("StripLineComments(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
