package sdom

import (
	"reflect"
	"strings"
)

// HasClass reports whether n's className prop contains class as a whole
// whitespace-separated token. Hyphens are ordinary class characters, so
// "foo" does not match "foo-bar". A missing or non-string className is
// false.
func HasClass(n *Node, class string) bool {
	if n == nil || n.Props == nil {
		return false
	}
	raw, ok := n.Props["className"].(string)
	if !ok {
		return false
	}
	for _, token := range strings.Fields(raw) {
		if token == class {
			return true
		}
	}
	return false
}

// HasProp reports whether n carries the prop name. The key is looked up
// exactly as written, with no attribute-name translation, so querying
// "for" against a tree keyed "htmlFor" is false. A stored nil value counts
// as absent. With a want value the stored value must also be strictly
// equal: same dynamic type, equal value.
func HasProp(n *Node, name string, want ...any) bool {
	if n == nil || n.Props == nil {
		return false
	}
	v, ok := n.Props[name]
	if !ok || v == nil {
		return false
	}
	if len(want) == 0 {
		return true
	}
	return strictEqual(v, want[0])
}

// strictEqual compares two prop values with fast paths for the common
// scalar types and reflect.DeepEqual for the rest.
func strictEqual(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case nil:
		return b == nil
	}
	return reflect.DeepEqual(a, b)
}
