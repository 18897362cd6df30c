package css

import (
	"regexp"
	"strings"
)

var declPattern = regexp.MustCompile(`([^:;]+):\s*([^;]+);?`)

// Declaration is one property: value pair
type Declaration struct {
	Property string
	Value    string
}

func (d Declaration) String() string {
	return d.Property + ": " + d.Value
}

// ParseDeclarations reads a declaration block. A property written more than
// once keeps its last value at the position of its first occurrence.
func ParseDeclarations(body string) []Declaration {
	var decls []Declaration
	index := make(map[string]int)

	for _, m := range declPattern.FindAllStringSubmatch(body, -1) {
		prop := strings.TrimSpace(m[1])
		value := strings.TrimSpace(m[2])
		if prop == "" || value == "" {
			continue
		}
		if i, ok := index[prop]; ok {
			decls[i].Value = value
			continue
		}
		index[prop] = len(decls)
		decls = append(decls, Declaration{Property: prop, Value: value})
	}

	return decls
}

// FormatDeclarations renders declarations one per line with the given
// indent, each terminated by a semicolon.
func FormatDeclarations(decls []Declaration, indent string) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.String() + ";"
	}
	return strings.Join(parts, "\n"+indent)
}
