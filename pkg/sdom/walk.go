package sdom

// childKind classifies a value found in child position.
type childKind uint8

const (
	childSkip childKind = iota // nils and booleans, never visited
	childLeaf                  // primitives, visited once and never descended
	childNode                  // element nodes, visited then walked
	childList                  // sequences, flattened in place
)

// classifyChild sorts a child value into its traversal class. Booleans and
// nils are the only skipped values; other falsy values such as 0 and ""
// are ordinary leaves.
func classifyChild(v any) childKind {
	switch c := v.(type) {
	case nil:
		return childSkip
	case bool:
		return childSkip
	case *Node:
		if c == nil {
			return childSkip
		}
		return childNode
	case []any, []*Node:
		return childList
	default:
		return childLeaf
	}
}

// ForEach walks the tree rooted at root in pre-order, calling visit first
// for root and then for every reachable child value, left to right.
// Element nodes are visited before their children, primitive leaves are
// visited exactly once, and sequences contribute their items without being
// visited themselves. Each visitable value is seen exactly once. A nil
// root or visit is a no-op.
func ForEach(root *Node, visit func(any)) {
	if root == nil || visit == nil {
		return
	}
	visit(root)
	walkChildren(root, visit)
}

// Filter runs ForEach over the tree and collects, in visitation order,
// every value pred accepts. Accepted leaves appear alongside accepted
// nodes. A predicate that accepts nothing yields an empty result.
func Filter(root *Node, pred func(any) bool) []any {
	if pred == nil {
		return nil
	}
	var hits []any
	ForEach(root, func(v any) {
		if pred(v) {
			hits = append(hits, v)
		}
	})
	return hits
}

func walkChildren(n *Node, visit func(any)) {
	if n.Props == nil {
		return
	}
	walkValue(n.Props["children"], visit)
}

// walkValue dispatches one child value according to its traversal class.
// List items are re-classified individually, so nested sequences flatten
// to any depth.
func walkValue(v any, visit func(any)) {
	switch classifyChild(v) {
	case childSkip:
	case childLeaf:
		visit(v)
	case childNode:
		n := v.(*Node)
		visit(n)
		walkChildren(n, visit)
	case childList:
		switch list := v.(type) {
		case []any:
			for _, item := range list {
				walkValue(item, visit)
			}
		case []*Node:
			for _, item := range list {
				walkValue(item, visit)
			}
		}
	}
}
