package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/sift-dev/sift/pkg/sdom"
)

// MaxDepth is the maximum tree nesting depth Marshal and Unmarshal accept.
const MaxDepth = 100

// frame is the serialized shape of one element node.
type frame struct {
	Type      string         `json:"type"`
	Component bool           `json:"component,omitempty"`
	Props     map[string]any `json:"props,omitempty"`
	Children  any            `json:"children,omitempty"`
}

// Marshal encodes the tree rooted at root as compact JSON.
func Marshal(root *sdom.Node) ([]byte, error) {
	f, err := encodeNode(root, 0)
	if err != nil {
		return nil, err
	}
	return json.Marshal(f)
}

// MarshalIndent encodes the tree as indented JSON for files and diffs.
func MarshalIndent(root *sdom.Node) ([]byte, error) {
	f, err := encodeNode(root, 0)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(f, "", "  ")
}

// Unmarshal decodes a tree from JSON produced by Marshal.
func Unmarshal(data []byte) (*sdom.Node, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return decodeNode(raw, 0)
}

// Encode writes the tree to w as indented JSON with a trailing newline.
func Encode(w io.Writer, root *sdom.Node) error {
	data, err := MarshalIndent(root)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// Decode reads one JSON tree from r.
func Decode(r io.Reader) (*sdom.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return Unmarshal(data)
}

func encodeNode(n *sdom.Node, depth int) (*frame, error) {
	if n == nil {
		return nil, fmt.Errorf("snapshot: nil node")
	}
	if err := checkDepth(depth); err != nil {
		return nil, err
	}

	f := &frame{Type: sdom.TypeName(n)}
	if _, ok := n.Type.(string); !ok {
		f.Component = true
	}

	for name, value := range n.Props {
		if name == "children" || isFunc(value) {
			continue
		}
		if f.Props == nil {
			f.Props = make(map[string]any, len(n.Props))
		}
		f.Props[name] = value
	}

	if n.Props != nil {
		kids, err := encodeValue(n.Props["children"], depth+1)
		if err != nil {
			return nil, err
		}
		f.Children = kids
	}
	return f, nil
}

// encodeValue converts one child value to its wire form. Nils, booleans,
// and primitives pass through; nodes become frames; sequences encode
// element by element.
func encodeValue(v any, depth int) (any, error) {
	if err := checkDepth(depth); err != nil {
		return nil, err
	}

	switch c := v.(type) {
	case nil:
		return nil, nil
	case *sdom.Node:
		if c == nil {
			return nil, nil
		}
		return encodeNode(c, depth)
	case []any:
		out := make([]any, 0, len(c))
		for _, item := range c {
			enc, err := encodeValue(item, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, enc)
		}
		return out, nil
	case []*sdom.Node:
		out := make([]any, 0, len(c))
		for _, item := range c {
			enc, err := encodeValue(item, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, enc)
		}
		return out, nil
	default:
		if isFunc(v) {
			return nil, nil
		}
		return v, nil
	}
}

func decodeNode(raw map[string]any, depth int) (*sdom.Node, error) {
	if err := checkDepth(depth); err != nil {
		return nil, err
	}

	name, ok := raw["type"].(string)
	if !ok {
		return nil, fmt.Errorf("snapshot: node is missing a type")
	}

	n := &sdom.Node{}
	if comp, _ := raw["component"].(bool); comp {
		n.Type = sdom.ComponentRef(name)
	} else {
		n.Type = name
	}

	if props, ok := raw["props"].(map[string]any); ok && len(props) > 0 {
		n.Props = make(sdom.Props, len(props)+1)
		for k, v := range props {
			n.Props[k] = v
		}
	}

	if kids, ok := raw["children"]; ok {
		dec, err := decodeValue(kids, depth+1)
		if err != nil {
			return nil, err
		}
		if n.Props == nil {
			n.Props = make(sdom.Props, 1)
		}
		n.Props["children"] = dec
	}
	return n, nil
}

// decodeValue revives one wire value. Objects in child position are
// element nodes; arrays decode element by element; everything else stays
// as encoding/json produced it.
func decodeValue(v any, depth int) (any, error) {
	if err := checkDepth(depth); err != nil {
		return nil, err
	}

	switch c := v.(type) {
	case map[string]any:
		return decodeNode(c, depth)
	case []any:
		out := make([]any, 0, len(c))
		for _, item := range c {
			dec, err := decodeValue(item, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, dec)
		}
		return out, nil
	default:
		return v, nil
	}
}

// checkDepth rejects trees nested beyond MaxDepth.
func checkDepth(depth int) error {
	if depth > MaxDepth {
		return fmt.Errorf("snapshot: tree exceeds maximum depth of %d", MaxDepth)
	}
	return nil
}

func isFunc(v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Kind() == reflect.Func
}
