package minify

import (
	"fmt"

	tdminify "github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"
)

// Engine minifies one kind of source text
type Engine interface {
	Minify(source string) (string, error)
}

// Kind selects which flavour of minification an engine performs
type Kind int

const (
	KindCSS Kind = iota
	KindJS
	KindJSExtended
)

const (
	mediaCSS = "text/css"
	mediaJS  = "application/javascript"
)

// Engine names accepted by NewEngine
const (
	EngineRegex    = "regex"
	EngineTdewolff = "tdewolff"
)

// NewEngine returns the named engine for kind. "regex" is the default
// pattern-based minifier; "tdewolff" uses a real tokenizer.
func NewEngine(name string, kind Kind) (Engine, error) {
	switch name {
	case "", EngineRegex:
		switch kind {
		case KindCSS:
			return CSS, nil
		case KindJS:
			return JS, nil
		default:
			return JSExtended, nil
		}
	case EngineTdewolff:
		m := tdminify.New()
		m.AddFunc(mediaCSS, css.Minify)
		m.AddFunc(mediaJS, js.Minify)
		mediaType := mediaJS
		if kind == KindCSS {
			mediaType = mediaCSS
		}
		return &Tokenizing{m: m, mediaType: mediaType}, nil
	}
	return nil, fmt.Errorf("unknown minify engine %q", name)
}

// Tokenizing wraps github.com/tdewolff/minify
type Tokenizing struct {
	m         *tdminify.M
	mediaType string
}

// Minify implements Engine
func (t *Tokenizing) Minify(source string) (string, error) {
	out, err := t.m.String(t.mediaType, source)
	if err != nil {
		return "", fmt.Errorf("minify %s: %w", t.mediaType, err)
	}
	return out, nil
}
