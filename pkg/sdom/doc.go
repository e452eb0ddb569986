// Package sdom models shallow-rendered UI element trees and provides the
// traversal and predicate primitives the rest of the module builds on.
//
// A tree is plain data. Every element is a Node holding an opaque Type and
// a Props map, and children live under the ordinary prop key "children".
// Child values are heterogeneous: element nodes, primitive leaves, nils and
// booleans, or nested sequences of any of these.
//
// # Traversal
//
// ForEach visits the root and then every reachable child value in
// pre-order, left to right. Nil and boolean children are skipped,
// primitives are visited as opaque leaves, and sequences are flattened in
// place without being visited themselves. Filter collects the visited
// values an arbitrary predicate accepts.
//
// # Predicates
//
// HasClass performs whole-token matching against the className prop, so
// "foo" never matches "foo-bar". HasProp looks prop names up exactly as
// given; no attribute-name translation (for/htmlFor and friends) is ever
// applied.
//
// # Construction
//
// Elements are created with variadic factory functions:
//
//	tree := Div(ClassName("card"),
//	    H1("Title"),
//	    P("Some content"),
//	    Button(Prop("type", "submit"), "Save"),
//	)
//
// Factories store child arguments verbatim, including nils and booleans
// from conditional rendering; deciding what to skip is the walker's job.
//
// All functions in this package are pure and never mutate their inputs, so
// concurrent use over shared read-only trees is safe.
package sdom
