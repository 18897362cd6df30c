package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "corpus_test")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	for name, content := range files {
		path := filepath.Join(tmpDir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return tmpDir
}

func TestDiscover(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"index.html":             "<p>",
		"contact.html":           "<p>",
		"styles.css":             "p{}",
		"projects/a.html":        "<p>",
		"projects/deep/b.html":   "<p>",
		"articles/c.html":        "<p>",
		"articles/notes.txt":     "x",
		"drafts/unlisted.html":   "<p>",
		"projects/folder.html/x": "dir named like a page",
	})

	tests := []struct {
		name     string
		patterns []string
		expected int
	}{
		{"root only", []string{"*.html"}, 2},
		{"default site layout", []string{"*.html", "projects/*.html", "articles/*.html"}, 4},
		{"recursive", []string{"**/*.html"}, 6},
		{"overlapping patterns are unique", []string{"*.html", "index.html", "**/*.html"}, 6},
		{"missing directory", []string{"missing/*.html"}, 0},
		{"specific file", []string{"contact.html"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := Discover(dir, tt.patterns)
			if err != nil {
				t.Fatalf("Discover(%v) error = %v", tt.patterns, err)
			}
			if len(results) != tt.expected {
				t.Errorf("Discover(%v) = %d files, want %d. Got: %v", tt.patterns, len(results), tt.expected, results)
			}
		})
	}
}

func TestDiscoverInvalidPattern(t *testing.T) {
	if _, err := Discover(os.TempDir(), []string{"[unclosed"}); err == nil {
		t.Error("Discover should reject an invalid pattern")
	}
}

func TestReadSkipsBadFiles(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"good.html": "<p class=\"ok\">",
		"bad.html":  "\xff\xfe\x00broken",
	})

	docs, errs := Read(dir, []string{"good.html", "bad.html", "missing.html"})

	if len(docs) != 1 || docs[0].Path != "good.html" {
		t.Fatalf("docs = %+v, want only good.html", docs)
	}
	if docs[0].Content != "<p class=\"ok\">" {
		t.Errorf("Content = %q", docs[0].Content)
	}
	if len(errs) != 2 {
		t.Fatalf("errs = %v, want 2", errs)
	}
	if errs[0].Path != "bad.html" || !errors.Is(errs[0], ErrNotUTF8) {
		t.Errorf("errs[0] = %v, want bad.html not UTF-8", errs[0])
	}
	if errs[1].Path != "missing.html" || !errors.Is(errs[1], os.ErrNotExist) {
		t.Errorf("errs[1] = %v, want missing.html not found", errs[1])
	}
}

func TestLoad(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"index.html":      "a",
		"projects/p.html": "b",
	})

	docs, errs, err := Load(dir, []string{"*.html", "projects/*.html"})
	if err != nil {
		t.Fatal(err)
	}
	if len(errs) != 0 {
		t.Errorf("errs = %v", errs)
	}
	if len(docs) != 2 {
		t.Fatalf("docs = %d, want 2", len(docs))
	}
	if docs[1].Path != filepath.Join("projects", "p.html") {
		t.Errorf("docs[1].Path = %q", docs[1].Path)
	}
}
