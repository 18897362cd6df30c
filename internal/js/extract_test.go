package js

import (
	"reflect"
	"testing"

	"sitetidy/internal/config"
	"sitetidy/internal/corpus"
)

func TestExtractBlocks(t *testing.T) {
	doc := corpus.Document{
		Path: "index.html",
		Content: "<script>\n  a();\n</script>" +
			"<SCRIPT type='text/x'>  </SCRIPT>" +
			"<script src=\"x.js\"></script>" +
			"<script>b()</script>",
	}

	blocks := ExtractBlocks(doc)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2: %+v", len(blocks), blocks)
	}
	if blocks[0].Content != "a();" || blocks[1].Content != "b()" {
		t.Errorf("contents = %q, %q", blocks[0].Content, blocks[1].Content)
	}
	if blocks[0].Source != "index.html" {
		t.Errorf("Source = %q", blocks[0].Source)
	}
	if blocks[0].Hash != Hash("a();") {
		t.Errorf("Hash = %q, want hash of trimmed content", blocks[0].Hash)
	}
}

func TestHashIsExact(t *testing.T) {
	if Hash("a();") == Hash("a( );") {
		t.Error("blocks differing by whitespace must hash differently")
	}
	if Hash("a();") != Hash("a();") {
		t.Error("Hash is not stable")
	}
}

func TestExtractCode(t *testing.T) {
	docs := []corpus.Document{
		{Path: "a.html", Content: "<script>\nvar x = 1;\n</script><button onclick=\"go()\">Go</button>"},
		{Path: "b.html", Content: "<script> </script><p>none</p>"},
	}

	code, handlers := ExtractCode(docs, config.DefaultEventAttrs)
	if code != "\nvar x = 1;\n\ngo()\n" {
		t.Errorf("code = %q", code)
	}
	if !reflect.DeepEqual(handlers, []string{"go()"}) {
		t.Errorf("handlers = %v", handlers)
	}
}

func TestEventHandlers(t *testing.T) {
	page := `<a onClick="a()" onmouseover='b("x")'>link</a>
<img src="p.png" onload="c()"/>
<div onkeyup="d()"></div>
<input onchange="  ">
<script>var s = '<a onclick="hidden()">';</script>`

	got := EventHandlers(page, config.DefaultEventAttrs)
	want := []string{"a()", `b("x")`, "c()"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EventHandlers() = %v, want %v", got, want)
	}

	if got := EventHandlers(page, []string{"onkeyup"}); !reflect.DeepEqual(got, []string{"d()"}) {
		t.Errorf("EventHandlers(onkeyup) = %v", got)
	}
}
