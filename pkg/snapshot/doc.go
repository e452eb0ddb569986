// Package snapshot serializes element trees to JSON and back.
//
// The wire format keeps the tree shape intact: children encode recursively
// with primitive leaves, nils, booleans, and nested sequences preserved
// verbatim, so a decoded tree traverses exactly like the original.
// Function-valued props cannot cross the wire and are dropped. Composite
// element types revive as sdom.ComponentRef carrying only the name, and
// numeric props revive as float64, the way encoding/json reads numbers.
//
// Decode enforces MaxDepth so hostile or runaway payloads cannot recurse
// without bound; Marshal applies the same limit, which also catches
// accidentally cyclic trees.
package snapshot
