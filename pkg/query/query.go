package query

import (
	"fmt"
	"strings"

	"github.com/sift-dev/sift/pkg/sdom"
	"github.com/sift-dev/sift/pkg/selector"
)

// FindAll returns every element node in the tree rooted at root, the root
// included, that matches the selector, in visitation order.
func FindAll(root *sdom.Node, sel string) ([]*sdom.Node, error) {
	m, err := selector.Compile(sel)
	if err != nil {
		return nil, err
	}

	var hits []*sdom.Node
	sdom.ForEach(root, func(v any) {
		if m.Match(v) {
			hits = append(hits, v.(*sdom.Node))
		}
	})
	return hits, nil
}

// First returns the first node matching the selector, or nil when nothing
// does.
func First(root *sdom.Node, sel string) (*sdom.Node, error) {
	hits, err := FindAll(root, sel)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, nil
	}
	return hits[0], nil
}

// Count returns the number of nodes matching the selector.
func Count(root *sdom.Node, sel string) (int, error) {
	hits, err := FindAll(root, sel)
	if err != nil {
		return 0, err
	}
	return len(hits), nil
}

// FilterNodes collects the element nodes pred accepts, in visitation
// order. Leaves are never passed to pred.
func FilterNodes(root *sdom.Node, pred func(*sdom.Node) bool) []*sdom.Node {
	if pred == nil {
		return nil
	}
	var hits []*sdom.Node
	sdom.ForEach(root, func(v any) {
		if n, ok := v.(*sdom.Node); ok && pred(n) {
			hits = append(hits, n)
		}
	})
	return hits
}

// TextContent concatenates the tree's primitive leaves in visitation
// order. String leaves are appended as-is, other leaves through
// fmt.Sprint.
func TextContent(root *sdom.Node) string {
	var b strings.Builder
	sdom.ForEach(root, func(v any) {
		switch leaf := v.(type) {
		case *sdom.Node:
		case string:
			b.WriteString(leaf)
		default:
			fmt.Fprint(&b, leaf)
		}
	})
	return b.String()
}
