package sift_test

import (
	"reflect"
	"testing"

	"github.com/sift-dev/sift"
)

func TestFacade_Traversal(t *testing.T) {
	tree := sift.Div(
		sift.Button(),
		sift.Nav(sift.Input()),
	)

	var visited []string
	sift.ForEach(tree, func(v any) {
		if n, ok := v.(*sift.Node); ok {
			visited = append(visited, sift.TypeName(n))
		}
	})

	want := []string{"div", "button", "nav", "input"}
	if !reflect.DeepEqual(visited, want) {
		t.Errorf("visited = %v, want %v", visited, want)
	}
}

func TestFacade_FindAll(t *testing.T) {
	tree := sift.Div(sift.ClassName("page"),
		sift.Button(sift.ClassName("btn", "primary"), sift.Prop("type", "submit"), "Save"),
		sift.Button(sift.ClassName("btn"), "Cancel"),
	)

	matches, err := sift.FindAll(tree, ".btn")
	if err != nil {
		t.Fatalf("FindAll error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}

	n, err := sift.Count(tree, `button[type="submit"]`)
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestFacade_Split(t *testing.T) {
	tokens := sift.Split(`input[type="text"]`)
	if len(tokens) != 2 {
		t.Fatalf("len(tokens) = %d, want 2", len(tokens))
	}
	if tokens[0].Kind != sift.KindIdent || tokens[0].Raw != "input" {
		t.Errorf("tokens[0] = %+v, want ident input", tokens[0])
	}
	if tokens[1].Kind != sift.KindAttr || tokens[1].Raw != `[type="text"]` {
		t.Errorf("tokens[1] = %+v, want attr [type=\"text\"]", tokens[1])
	}
}
