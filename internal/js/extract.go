// Package js pulls inline scripts out of HTML pages, reports on the symbols
// they declare and merges them into one external file.
package js

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"sitetidy/internal/corpus"
)

var scriptPattern = regexp.MustCompile(`(?is)<script[^>]*>(.*?)</script>`)

// ScriptBlock is the body of one <script> element
type ScriptBlock struct {
	Content string
	Source  string
	Hash    string
}

// Hash returns the identity of a block's content. Content is compared byte
// for byte: blocks differing in a single space hash differently.
func Hash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// ExtractBlocks returns every non-blank script body of doc, trimmed, in
// document order.
func ExtractBlocks(doc corpus.Document) []ScriptBlock {
	var blocks []ScriptBlock
	for _, m := range scriptPattern.FindAllStringSubmatch(doc.Content, -1) {
		content := strings.TrimSpace(m[1])
		if content == "" {
			continue
		}
		blocks = append(blocks, ScriptBlock{
			Content: content,
			Source:  doc.Path,
			Hash:    Hash(content),
		})
	}
	return blocks
}

// ExtractAllBlocks runs ExtractBlocks over the corpus
func ExtractAllBlocks(docs []corpus.Document) []ScriptBlock {
	var blocks []ScriptBlock
	for _, doc := range docs {
		blocks = append(blocks, ExtractBlocks(doc)...)
	}
	return blocks
}

// ExtractCode concatenates, per document, every script body followed by the
// values of its inline event handler attributes, one entry per line. The
// handler values are also returned on their own.
func ExtractCode(docs []corpus.Document, eventAttrs []string) (string, []string) {
	var b strings.Builder
	var handlers []string

	for _, doc := range docs {
		for _, m := range scriptPattern.FindAllStringSubmatch(doc.Content, -1) {
			if strings.TrimSpace(m[1]) != "" {
				b.WriteString(m[1] + "\n")
			}
		}
		for _, h := range EventHandlers(doc.Content, eventAttrs) {
			handlers = append(handlers, h)
			b.WriteString(h + "\n")
		}
	}

	return b.String(), handlers
}

// EventHandlers returns the values of the given attributes (onclick, ...)
// on every element of page, in document order.
func EventHandlers(page string, attrs []string) []string {
	wanted := make(map[string]bool, len(attrs))
	for _, a := range attrs {
		wanted[strings.ToLower(a)] = true
	}

	var handlers []string
	z := html.NewTokenizer(strings.NewReader(page))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF or a malformed tail; either way the page is done
			return handlers
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			for _, attr := range tok.Attr {
				if !wanted[attr.Key] {
					continue
				}
				if v := strings.TrimSpace(attr.Val); v != "" {
					handlers = append(handlers, v)
				}
			}
		}
	}
}
