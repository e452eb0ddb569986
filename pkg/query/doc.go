// Package query composes the traversal and selector layers into one-call
// tree searches: FindAll, First, and Count run a compiled selector over a
// tree, FilterNodes applies an arbitrary node predicate, and TextContent
// concatenates a tree's primitive leaves.
package query
