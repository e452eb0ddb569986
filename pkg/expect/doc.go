// Package expect provides test helpers for asserting on element trees.
//
// Every helper takes the *testing.T first, calls t.Helper, and fails
// through t.Errorf with a truncated outline of the offending tree, so a
// failing assertion reads like any other test failure:
//
//	func TestToolbar(t *testing.T) {
//	    tree := renderToolbar()
//	    expect.Count(t, tree, "button", 3)
//	    expect.Match(t, tree, `button[type="submit"].primary`)
//	    expect.Text(t, tree, "Save")
//	}
package expect
