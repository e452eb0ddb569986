package selector

import "strings"

// Kind discriminates the three token shapes a selector can contain.
type Kind uint8

const (
	KindIdent Kind = iota // bare element or component name, first position only
	KindClass             // ".name", captured with its leading dot
	KindAttr              // "[...]", captured with both brackets
)

// String returns the kind's display name.
func (k Kind) String() string {
	switch k {
	case KindIdent:
		return "ident"
	case KindClass:
		return "class"
	case KindAttr:
		return "attr"
	default:
		return "unknown"
	}
}

// Token is one unit of a split selector. Raw preserves the exact source
// text of the token, marker characters included.
type Token struct {
	Kind Kind
	Raw  string
}

// Name returns the token's bare name: identifiers unchanged, class tokens
// without the dot, attribute tokens without the surrounding brackets.
func (t Token) Name() string {
	switch t.Kind {
	case KindClass:
		return strings.TrimPrefix(t.Raw, ".")
	case KindAttr:
		return strings.TrimSuffix(strings.TrimPrefix(t.Raw, "["), "]")
	default:
		return t.Raw
	}
}
