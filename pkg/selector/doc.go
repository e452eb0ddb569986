// Package selector splits compact element selectors into match tokens and
// compiles them into node predicates.
//
// The grammar is deliberately small: an optional leading identifier, then
// any mix of class tokens (".primary") and bracketed attribute tokens
// ('[type="text"]'). There are no combinators, no descendant syntax, and
// no pseudo-classes; a selector always describes a single element.
//
// # Splitting
//
// Split is a hand-written scanner. It is total: malformed input never
// fails, the scan just stops at the first position where no token can
// start and returns the tokens recognized so far. Class tokens keep their
// leading dot and attribute tokens keep their brackets, so the original
// selector can be reassembled by concatenating Raw fields.
//
// # Matching
//
// Compile parses the tokens once and returns a Matcher whose Match method
// tests element nodes: the identifier against the node's type name, class
// tokens through sdom.HasClass, and attribute tokens through sdom.HasProp.
// Attribute values keep HasProp's strict equality, so [count=3] matches an
// int prop and [count="3"] a string one.
package selector
