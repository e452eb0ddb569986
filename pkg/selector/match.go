package selector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sift-dev/sift/pkg/sdom"
)

// Matcher is a compiled selector. A node matches when every part agrees:
// the identifier (if any) equals the node's type name, every class token
// passes sdom.HasClass, and every attribute token passes sdom.HasProp.
type Matcher struct {
	source  string
	ident   string
	classes []string
	attrs   []attrTest
}

type attrTest struct {
	name     string
	value    any
	hasValue bool
}

// Compile splits the selector and parses its tokens into a Matcher. A
// selector that yields no tokens, or an attribute token without a name,
// is an error.
func Compile(s string) (*Matcher, error) {
	tokens := Split(s)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("selector %q: no tokens", s)
	}

	m := &Matcher{source: s}
	for _, tok := range tokens {
		switch tok.Kind {
		case KindIdent:
			m.ident = tok.Raw
		case KindClass:
			m.classes = append(m.classes, tok.Name())
		case KindAttr:
			test, err := parseAttr(tok)
			if err != nil {
				return nil, fmt.Errorf("selector %q: %w", s, err)
			}
			m.attrs = append(m.attrs, test)
		}
	}
	return m, nil
}

// parseAttr parses the inside of one bracketed token: a bare prop name, or
// name=value with the value optionally quoted.
func parseAttr(tok Token) (attrTest, error) {
	inner := strings.TrimSpace(tok.Name())
	if inner == "" {
		return attrTest{}, fmt.Errorf("empty attribute token %q", tok.Raw)
	}

	eq := strings.IndexByte(inner, '=')
	if eq < 0 {
		return attrTest{name: inner}, nil
	}

	name := strings.TrimSpace(inner[:eq])
	if name == "" {
		return attrTest{}, fmt.Errorf("attribute token %q has no name", tok.Raw)
	}
	return attrTest{
		name:     name,
		value:    parseLiteral(strings.TrimSpace(inner[eq+1:])),
		hasValue: true,
	}, nil
}

// parseLiteral interprets an attribute value: quoted text is a string,
// true/false are booleans, numbers become int or float64, and anything
// else stays a raw string.
func parseLiteral(raw string) any {
	if len(raw) >= 2 {
		first := raw[0]
		if (first == '"' || first == '\'') && raw[len(raw)-1] == first {
			return raw[1 : len(raw)-1]
		}
	}
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

// Match reports whether v is an element node satisfying the selector.
// Leaves and non-node values never match.
func (m *Matcher) Match(v any) bool {
	n, ok := v.(*sdom.Node)
	if !ok || n == nil {
		return false
	}
	if m.ident != "" && sdom.TypeName(n) != m.ident {
		return false
	}
	for _, class := range m.classes {
		if !sdom.HasClass(n, class) {
			return false
		}
	}
	for _, attr := range m.attrs {
		if attr.hasValue {
			if !sdom.HasProp(n, attr.name, attr.value) {
				return false
			}
		} else if !sdom.HasProp(n, attr.name) {
			return false
		}
	}
	return true
}

// String returns the selector source the matcher was compiled from.
func (m *Matcher) String() string {
	return m.source
}
