package expect

import (
	"strings"
	"testing"

	"github.com/sift-dev/sift/pkg/query"
	"github.com/sift-dev/sift/pkg/sdom"
)

// Class asserts that the node carries the class as a whole token.
func Class(t *testing.T, n *sdom.Node, class string) {
	t.Helper()
	if !sdom.HasClass(n, class) {
		t.Errorf("expected node to have class %q, got:\n%s", class, describe(n))
	}
}

// NoClass asserts that the node does not carry the class.
func NoClass(t *testing.T, n *sdom.Node, class string) {
	t.Helper()
	if sdom.HasClass(n, class) {
		t.Errorf("expected node to NOT have class %q, got:\n%s", class, describe(n))
	}
}

// Prop asserts that the node carries the prop under exactly that name.
func Prop(t *testing.T, n *sdom.Node, name string) {
	t.Helper()
	if !sdom.HasProp(n, name) {
		t.Errorf("expected node to have prop %q, got:\n%s", name, describe(n))
	}
}

// PropValue asserts that the node carries the prop with exactly the given
// value, same dynamic type included.
func PropValue(t *testing.T, n *sdom.Node, name string, want any) {
	t.Helper()
	if !sdom.HasProp(n, name, want) {
		t.Errorf("expected node prop %q = %v (%T), got:\n%s", name, want, want, describe(n))
	}
}

// Match asserts that at least one node in the tree matches the selector.
func Match(t *testing.T, root *sdom.Node, sel string) {
	t.Helper()
	n, err := query.Count(root, sel)
	if err != nil {
		t.Errorf("invalid selector %q: %v", sel, err)
		return
	}
	if n == 0 {
		t.Errorf("expected a match for %q, got:\n%s", sel, describe(root))
	}
}

// NoMatch asserts that no node in the tree matches the selector.
func NoMatch(t *testing.T, root *sdom.Node, sel string) {
	t.Helper()
	n, err := query.Count(root, sel)
	if err != nil {
		t.Errorf("invalid selector %q: %v", sel, err)
		return
	}
	if n > 0 {
		t.Errorf("expected no match for %q, found %d, got:\n%s", sel, n, describe(root))
	}
}

// Count asserts the exact number of selector matches in the tree.
func Count(t *testing.T, root *sdom.Node, sel string, want int) {
	t.Helper()
	got, err := query.Count(root, sel)
	if err != nil {
		t.Errorf("invalid selector %q: %v", sel, err)
		return
	}
	if got != want {
		t.Errorf("matches for %q = %d, want %d, got:\n%s", sel, got, want, describe(root))
	}
}

// Text asserts that the tree's text content contains the substring.
func Text(t *testing.T, root *sdom.Node, substr string) {
	t.Helper()
	text := query.TextContent(root)
	if !strings.Contains(text, substr) {
		t.Errorf("expected text content to contain %q, got: %q", substr, truncate(text, 200))
	}
}

// describe renders a node for failure messages.
func describe(n *sdom.Node) string {
	if n == nil {
		return "<nil>"
	}
	return truncate(sdom.Outline(n), 500)
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
