package css

import (
	"strings"
	"testing"
)

func TestRemoveUnused(t *testing.T) {
	u := NewUsage()
	u.Add(`<div class="card"><span id="logo"></span></div>`)
	a := Analyzer{KeepElements: []string{"html", "body"}}

	source := `/* === LAYOUT === */
.card { padding: 1em; }

/* unused below */
.orphan { color: blue; }
#logo { width: 10px; }
.ghost { }
.stale, .gone { margin: 0; }
`
	result := RemoveUnused(source, u, a)

	expected := "/* === LAYOUT === */\n" +
		".card { padding: 1em; }\n" +
		"\n" +
		"/* unused below */\n" +
		"\n" +
		"#logo { width: 10px; }\n" +
		".ghost { }\n" +
		"\n"
	if result.Output != expected {
		t.Errorf("Output =\n%q\nwant\n%q", result.Output, expected)
	}
	if len(result.Used) != 2 {
		t.Errorf("Used = %d rules, want 2", len(result.Used))
	}
	if len(result.Unused) != 2 || result.Removed != 2 || result.Skipped() != 0 {
		t.Errorf("Unused = %d, Removed = %d, Skipped = %d", len(result.Unused), result.Removed, result.Skipped())
	}
}

func TestRemoveUnusedDuplicateSpans(t *testing.T) {
	u := NewUsage()
	u.Add(`<p class="keep">`)
	a := Analyzer{}

	// The same unused text appears twice; each removal consumes the next
	// occurrence, never one before the previous edit.
	source := ".x{a:1}\n.keep{b:2}\n.x{a:1}\n"
	result := RemoveUnused(source, u, a)

	if result.Output != "\n.keep{b:2}\n\n" {
		t.Errorf("Output = %q", result.Output)
	}
	if result.Removed != 2 {
		t.Errorf("Removed = %d, want 2", result.Removed)
	}
}

func TestRemoveUnusedCommentInsideSelector(t *testing.T) {
	u := NewUsage()
	a := Analyzer{}

	source := ".old /* legacy */ .x { a: 1; }\n"
	result := RemoveUnused(source, u, a)

	if result.Output != source {
		t.Errorf("Output = %q, want source unchanged", result.Output)
	}
	if result.Skipped() != 1 {
		t.Errorf("Skipped() = %d, want 1", result.Skipped())
	}
}

func TestRemoveUnusedIgnoresCommentedOutCopy(t *testing.T) {
	u := NewUsage()
	a := Analyzer{}

	source := "/* old: .ghost{color:red} */\n.ghost{color:red}\n"
	result := RemoveUnused(source, u, a)

	if result.Output != "/* old: .ghost{color:red} */\n\n" {
		t.Errorf("Output = %q", result.Output)
	}
	if len(result.Unused) != 1 || result.Removed != 1 {
		t.Errorf("Unused = %d, Removed = %d, want 1 and 1", len(result.Unused), result.Removed)
	}
}

func TestRemoveUnusedKeepsAtRuleWrapper(t *testing.T) {
	u := NewUsage()
	a := Analyzer{}

	source := "@media print { .x { a: 1; } }"
	result := RemoveUnused(source, u, a)

	// The wrapper text is not a rule, so it survives with an empty body
	if !strings.HasPrefix(result.Output, "@media print {") || strings.Contains(result.Output, ".x") {
		t.Errorf("Output = %q", result.Output)
	}
}
