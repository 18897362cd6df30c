package css

import (
	"reflect"
	"strings"
	"testing"
)

func TestRemoveEmptyRules(t *testing.T) {
	got, n := RemoveEmptyRules(".a{x:1}\n.b{}\n.c {  \n }\n.d{y:2}")
	if got != ".a{x:1}\n.d{y:2}" {
		t.Errorf("RemoveEmptyRules() = %q", got)
	}
	if n != 2 {
		t.Errorf("removed %d, want 2", n)
	}
}

func TestOptimizeProperties(t *testing.T) {
	got := OptimizeProperties("/* keep */\n.a { color: red; margin:0; color: blue }\n.b { ; }")
	want := "/* keep */\n.a {\n  color: blue;\n  margin: 0;\n}"
	if got != want {
		t.Errorf("OptimizeProperties() =\n%q\nwant\n%q", got, want)
	}
}

func TestDedupe(t *testing.T) {
	rules := ScanRules(`.a { x: 1; }
.b { y: 1; }
.a  { x: 2; }
.c { z: 1; }
 .a { x: 3; }
.empty { }
`)
	out, duplicates := Dedupe(rules)

	var keys []string
	for _, r := range out {
		keys = append(keys, r.Key())
	}
	if !reflect.DeepEqual(keys, []string{".a", ".b", ".c"}) {
		t.Fatalf("keys = %v", keys)
	}
	if out[0].Body != "x: 3;" {
		t.Errorf(".a body = %q, want the last occurrence", out[0].Body)
	}
	if !reflect.DeepEqual(duplicates, []string{".a", ".a"}) {
		t.Errorf("duplicates = %v", duplicates)
	}
}

func TestDedupeText(t *testing.T) {
	got, _ := DedupeText(".a{x:1}\n.a{x:2}\n.b{y:1}")
	want := ".a {\n  x:2\n}\n\n.b {\n  y:1\n}\n\n"
	if got != want {
		t.Errorf("DedupeText() = %q, want %q", got, want)
	}
}

func TestPretty(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single rule",
			input:    ".a{color:red}",
			expected: ".a {\n  color: red;\n}\n\n",
		},
		{
			name:     "multiple declarations",
			input:    "h1 ,  h2 { margin : 0 ; padding:0 }\n\n\n\n.b{x:y;}",
			expected: "h1 , h2 {\n  margin: 0;\n  padding: 0;\n}\n\n.b {\n  x: y;\n}\n\n",
		},
		{
			name:     "comment before selector",
			input:    "/* nav */ .nav { a: b }",
			expected: "/* nav */\n.nav {\n  a: b;\n}\n\n",
		},
		{
			name:     "empty body",
			input:    ".e { }",
			expected: ".e {\n}\n\n",
		},
		{
			name:     "at rule wrapper",
			input:    "@media print { .a { b: c } }",
			expected: "@media print {\n.a {\n  b: c;\n}\n\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pretty(tt.input)
			if got != tt.expected {
				t.Errorf("Pretty(%q) =\n%q\nwant\n%q", tt.input, got, tt.expected)
			}
			if again := Pretty(got); again != got {
				t.Errorf("Pretty is not idempotent:\n%q\n%q", got, again)
			}
		})
	}
}

func TestOptimizeEndToEnd(t *testing.T) {
	result := Optimize(".a{color:red}.b{}.a{color:blue}", OptimizeOptions{})

	if result.Output != ".a {\n  color: blue;\n}\n\n" {
		t.Errorf("Output = %q", result.Output)
	}
	if result.EmptyRemoved != 1 {
		t.Errorf("EmptyRemoved = %d, want 1", result.EmptyRemoved)
	}
	if !reflect.DeepEqual(result.Duplicates, []string{".a"}) {
		t.Errorf("Duplicates = %v", result.Duplicates)
	}
	if result.Rules != 1 {
		t.Errorf("Rules = %d, want 1", result.Rules)
	}
}

func TestOptimizeDedupPlacement(t *testing.T) {
	// N rules share a selector: one survives, at the first rank, with the
	// last declarations.
	input := ".x{a:1}\n.y{b:1}\n.x{a:2}\n.z{c:1}\n.x { a: 3; d: 4 }\n"
	result := Optimize(input, OptimizeOptions{})

	want := ".x {\n  a: 3;\n  d: 4;\n}\n\n.y {\n  b: 1;\n}\n\n.z {\n  c: 1;\n}\n\n"
	if result.Output != want {
		t.Errorf("Output =\n%q\nwant\n%q", result.Output, want)
	}
	if strings.Count(result.Output, ".x {") != 1 {
		t.Error(".x appears more than once")
	}
}

func TestOptimizeOrganize(t *testing.T) {
	input := ".btn{a:1}\n@media screen{.nav{b:1}}\nhtml{c:1}\n.misc{d:1}\nh2{e:1}"
	result := Optimize(input, OptimizeOptions{Organize: true})

	order := []string{
		"/* === RESET & BASE === */", "html {",
		"/* === BASE ELEMENTS === */", "h2 {",
		"/* === LAYOUT === */", ".nav {",
		"/* === COMPONENTS === */", ".btn {",
		"/* === UTILITIES === */", ".misc {",
	}
	last := -1
	for _, s := range order {
		idx := strings.Index(result.Output, s)
		if idx <= last {
			t.Fatalf("%q out of order in\n%s", s, result.Output)
		}
		last = idx
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		selector string
		expected string
	}{
		{"*", "reset"},
		{"html", "reset"},
		{"p", "base"},
		{".main-header", "layout"},
		{".card-title", "components"},
		{".text-center", "utilities"},
		{"@media print", "responsive"},
	}

	for _, tt := range tests {
		if got := Classify(tt.selector); got != tt.expected {
			t.Errorf("Classify(%q) = %q, want %q", tt.selector, got, tt.expected)
		}
	}
}
