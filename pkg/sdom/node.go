package sdom

// Props holds an element's properties keyed by raw prop name. Children,
// when present, are stored under the key "children"; nothing else about
// the map is special.
type Props map[string]any

// Node is a single shallow-rendered element: an opaque type tag plus its
// props. Intrinsic elements carry a string Type ("div", "input"); composite
// elements carry any value implementing Component.
type Node struct {
	Type  any
	Props Props
}

// Component names a composite element type.
type Component interface {
	ComponentName() string
}

// ComponentRef is a minimal Component carrying only a name. Decoded
// snapshots use it to stand in for composite types that cannot round-trip
// through JSON.
type ComponentRef string

// ComponentName implements Component.
func (c ComponentRef) ComponentName() string { return string(c) }

// TypeName returns the display name of a node's type. Intrinsic elements
// yield their tag string, composite elements their ComponentName, and
// anything else the empty string.
func TypeName(n *Node) string {
	if n == nil {
		return ""
	}
	switch t := n.Type.(type) {
	case string:
		return t
	case Component:
		return t.ComponentName()
	default:
		return ""
	}
}
