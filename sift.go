// Package sift provides the public API for querying and inspecting
// shallow-rendered UI element trees.
//
// This is the recommended import for most programs:
//
//	import "github.com/sift-dev/sift"
//
// Usage:
//
//	tree := sift.Div(sift.ClassName("page"),
//	    sift.Button(sift.ClassName("btn", "primary"), "Save"),
//	)
//
//	matches, err := sift.FindAll(tree, ".btn.primary")
package sift

import (
	"github.com/sift-dev/sift/pkg/query"
	"github.com/sift-dev/sift/pkg/sdom"
	"github.com/sift-dev/sift/pkg/selector"
)

// =============================================================================
// Data model (re-export from pkg/sdom)
// =============================================================================

// Node is a shallow-rendered element node.
type Node = sdom.Node

// Props holds a node's properties, children included.
type Props = sdom.Props

// Component is a non-host node type carrying its own name.
type Component = sdom.Component

// ComponentRef names a component without rendering it.
type ComponentRef = sdom.ComponentRef

// TypeName returns the display name of a node's type.
var TypeName = sdom.TypeName

// =============================================================================
// Traversal and predicates (re-export from pkg/sdom)
// =============================================================================

// ForEach walks a tree in pre-order and calls visit for every node and
// leaf value.
var ForEach = sdom.ForEach

// Filter collects the visited values accepted by pred, in visit order.
var Filter = sdom.Filter

// HasClass reports whether a node's className contains the given class
// as a whole whitespace-separated token.
var HasClass = sdom.HasClass

// HasProp reports whether a node carries a property, optionally with an
// exact expected value.
var HasProp = sdom.HasProp

// Outline renders a tree as an indented text outline.
var Outline = sdom.Outline

// =============================================================================
// Selectors (re-export from pkg/selector)
// =============================================================================

// Token is one selector token.
type Token = selector.Token

// Kind discriminates selector token kinds.
type Kind = selector.Kind

// Token kinds.
const (
	KindIdent = selector.KindIdent
	KindClass = selector.KindClass
	KindAttr  = selector.KindAttr
)

// Split splits a selector into its ordered tokens.
var Split = selector.Split

// Matcher is a compiled selector.
type Matcher = selector.Matcher

// Compile compiles a selector into a Matcher.
var Compile = selector.Compile

// =============================================================================
// Queries (re-export from pkg/query)
// =============================================================================

// FindAll returns every node matching the selector, in visit order.
var FindAll = query.FindAll

// First returns the first node matching the selector, or nil.
var First = query.First

// Count returns the number of nodes matching the selector.
var Count = query.Count

// TextContent concatenates the text leaves of a tree.
var TextContent = query.TextContent

// =============================================================================
// Construction (re-export from pkg/sdom)
// =============================================================================

// El builds a node from a type and a mix of attributes and children.
var El = sdom.El

// Attr is a named property for El and the element factories.
type Attr = sdom.Attr

// Prop builds an arbitrary attribute.
var Prop = sdom.Prop

// ClassName joins classes into a className attribute.
var ClassName = sdom.ClassName

// ID builds an id attribute.
var ID = sdom.ID

// Href builds an href attribute.
var Href = sdom.Href

// Common element factories.
var (
	Div    = sdom.Div
	Span   = sdom.Span
	P      = sdom.P
	A      = sdom.A
	H1     = sdom.H1
	H2     = sdom.H2
	H3     = sdom.H3
	Ul     = sdom.Ul
	Ol     = sdom.Ol
	Li     = sdom.Li
	Img    = sdom.Img
	Nav    = sdom.Nav
	Header = sdom.Header
	Footer = sdom.Footer
	Main   = sdom.Main
	Form   = sdom.Form
	Input  = sdom.Input
	Button = sdom.Button
	Label  = sdom.Label
	Select = sdom.Select
	Option = sdom.Option
	Table  = sdom.Table
	Tr     = sdom.Tr
	Th     = sdom.Th
	Td     = sdom.Td
)
