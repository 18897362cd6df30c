package js

import (
	"regexp"
	"strings"
)

var (
	scriptElement = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	srcAttr       = regexp.MustCompile(`(?i)\ssrc\s*=\s*["']?([^"'\s>]+)`)
)

// ScriptTag is the reference inserted before </body>
func ScriptTag(src string) string {
	return `<script src="` + src + `"></script>`
}

// Externalize removes every <script> element from page except one that
// already loads src, then references src from a tag before </body> unless
// src is mentioned somewhere in the page. Pages without </body> lose their
// scripts and get no reference. The boolean reports whether the page
// changed; running Externalize on its own output changes nothing.
func Externalize(page, src string) (string, bool) {
	out := scriptElement.ReplaceAllStringFunc(page, func(element string) string {
		if loads(element, src) {
			return element
		}
		return ""
	})
	out = blankRunPattern.ReplaceAllString(out, "\n\n")

	if strings.Contains(out, "</body>") && !strings.Contains(out, src) {
		out = strings.ReplaceAll(out, "</body>", "    "+ScriptTag(src)+"\n  </body>")
	}

	return out, out != page
}

// ExternalSources returns, in page order, the src of every external script
// element that Externalize drops from page because it loads something other
// than src
func ExternalSources(page, src string) []string {
	var dropped []string
	for _, element := range scriptElement.FindAllString(page, -1) {
		if m := srcAttr.FindStringSubmatch(openTag(element)); m != nil && m[1] != src {
			dropped = append(dropped, m[1])
		}
	}
	return dropped
}

func loads(element, src string) bool {
	m := srcAttr.FindStringSubmatch(openTag(element))
	return m != nil && m[1] == src
}

func openTag(element string) string {
	return element[:strings.Index(element, ">")+1]
}
