package sdom

import "testing"

func TestEl_MergesAttrsAndProps(t *testing.T) {
	n := El("input",
		Prop("type", "text"),
		[]Attr{{Name: "name", Value: "q"}, {Name: "required", Value: true}},
		Props{"placeholder": "Search"},
	)

	if n.Type != "input" {
		t.Errorf("Type = %v, want input", n.Type)
	}
	for name, want := range map[string]any{
		"type":        "text",
		"name":        "q",
		"required":    true,
		"placeholder": "Search",
	} {
		if got := n.Props[name]; got != want {
			t.Errorf("Props[%q] = %v, want %v", name, got, want)
		}
	}
}

func TestEl_SingleChildStoredDirectly(t *testing.T) {
	n := Div("only")

	if got := n.Props["children"]; got != "only" {
		t.Errorf("children = %v (%T), want the bare string", got, got)
	}
}

func TestEl_MultipleChildrenBecomeSequence(t *testing.T) {
	n := Div("a", "b")

	kids, ok := n.Props["children"].([]any)
	if !ok {
		t.Fatalf("children = %T, want []any", n.Props["children"])
	}
	if len(kids) != 2 || kids[0] != "a" || kids[1] != "b" {
		t.Errorf("children = %v, want [a b]", kids)
	}
}

func TestEl_PreservesRawChildren(t *testing.T) {
	n := Div(nil, false, "x")

	kids, ok := n.Props["children"].([]any)
	if !ok {
		t.Fatalf("children = %T, want []any", n.Props["children"])
	}
	if len(kids) != 3 {
		t.Fatalf("len(children) = %d, want 3", len(kids))
	}
	if kids[0] != nil || kids[1] != false || kids[2] != "x" {
		t.Errorf("children = %v, want [<nil> false x]", kids)
	}
}

func TestEl_NoChildrenNoKey(t *testing.T) {
	n := Div(ClassName("empty"))

	if _, ok := n.Props["children"]; ok {
		t.Error("childless element grew a children prop")
	}
}

func TestClassName_JoinsClasses(t *testing.T) {
	n := Div(ClassName("btn", "btn-primary"))

	if got := n.Props["className"]; got != "btn btn-primary" {
		t.Errorf("className = %v, want joined string", got)
	}
	if !HasClass(n, "btn-primary") {
		t.Error("joined class not matched")
	}
}

func TestEl_ComponentType(t *testing.T) {
	n := El(ComponentRef("Card"), Prop("title", "Hello"))

	if got := TypeName(n); got != "Card" {
		t.Errorf("TypeName = %q, want Card", got)
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"intrinsic", Div(), "div"},
		{"component", El(ComponentRef("App")), "App"},
		{"nil node", nil, ""},
		{"opaque type", &Node{Type: 7}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeName(tt.node); got != tt.want {
				t.Errorf("TypeName = %q, want %q", got, tt.want)
			}
		})
	}
}
