package sdom

import "strings"

// Attr is a single prop assignment for El and the element factories.
type Attr struct {
	Name  string
	Value any
}

// Prop builds one prop assignment.
func Prop(name string, value any) Attr {
	return Attr{Name: name, Value: value}
}

// ClassName sets the className prop, joining multiple classes with spaces.
func ClassName(classes ...string) Attr {
	return Attr{Name: "className", Value: strings.Join(classes, " ")}
}

// ID sets the id prop.
func ID(id string) Attr {
	return Attr{Name: "id", Value: id}
}

// Href sets the href prop.
func Href(url string) Attr {
	return Attr{Name: "href", Value: url}
}

// El builds an element node of the given type. Arguments can be: Attr,
// []Attr, Props, or a child value. Attrs and Props maps merge into the
// node's props; everything else, nils and booleans included, is stored
// under "children" verbatim, so conditional children survive into the tree
// exactly as passed and skipping stays a traversal decision.
func El(typ any, args ...any) *Node {
	node := &Node{Type: typ}

	var kids []any
	for _, arg := range args {
		switch v := arg.(type) {
		case Attr:
			node.setProp(v.Name, v.Value)

		case []Attr:
			for _, attr := range v {
				node.setProp(attr.Name, attr.Value)
			}

		case Props:
			for name, value := range v {
				node.setProp(name, value)
			}

		default:
			kids = append(kids, arg)
		}
	}

	switch len(kids) {
	case 0:
	case 1:
		node.setProp("children", kids[0])
	default:
		node.setProp("children", kids)
	}

	return node
}

func (n *Node) setProp(name string, value any) {
	if name == "" {
		return
	}
	if n.Props == nil {
		n.Props = make(Props)
	}
	n.Props[name] = value
}

// Content sectioning elements

func Header(args ...any) *Node  { return El("header", args...) }
func Footer(args ...any) *Node  { return El("footer", args...) }
func Main(args ...any) *Node    { return El("main", args...) }
func Nav(args ...any) *Node     { return El("nav", args...) }
func Section(args ...any) *Node { return El("section", args...) }
func Article(args ...any) *Node { return El("article", args...) }
func H1(args ...any) *Node      { return El("h1", args...) }
func H2(args ...any) *Node      { return El("h2", args...) }
func H3(args ...any) *Node      { return El("h3", args...) }

// Text content elements

func Div(args ...any) *Node  { return El("div", args...) }
func P(args ...any) *Node    { return El("p", args...) }
func Span(args ...any) *Node { return El("span", args...) }
func A(args ...any) *Node    { return El("a", args...) }
func Ul(args ...any) *Node   { return El("ul", args...) }
func Ol(args ...any) *Node   { return El("ol", args...) }
func Li(args ...any) *Node   { return El("li", args...) }
func Img(args ...any) *Node  { return El("img", args...) }

// Form elements

func Form(args ...any) *Node     { return El("form", args...) }
func Input(args ...any) *Node    { return El("input", args...) }
func Button(args ...any) *Node   { return El("button", args...) }
func Label(args ...any) *Node    { return El("label", args...) }
func Select(args ...any) *Node   { return El("select", args...) }
func Option(args ...any) *Node   { return El("option", args...) }
func Textarea(args ...any) *Node { return El("textarea", args...) }

// Table elements

func Table(args ...any) *Node { return El("table", args...) }
func Thead(args ...any) *Node { return El("thead", args...) }
func Tbody(args ...any) *Node { return El("tbody", args...) }
func Tr(args ...any) *Node    { return El("tr", args...) }
func Th(args ...any) *Node    { return El("th", args...) }
func Td(args ...any) *Node    { return El("td", args...) }
