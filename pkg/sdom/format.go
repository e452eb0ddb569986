package sdom

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Outline returns an indented, one-value-per-line sketch of the tree for
// failure messages and CLI output. Element lines carry their non-children
// props in sorted order; string leaves print quoted, other leaves as bare
// values. Skipped children do not appear.
func Outline(root *Node) string {
	var b strings.Builder
	outlineValue(&b, root, 0)
	return strings.TrimSuffix(b.String(), "\n")
}

func outlineValue(b *strings.Builder, v any, depth int) {
	switch classifyChild(v) {
	case childSkip:
	case childLeaf:
		indent(b, depth)
		if s, ok := v.(string); ok {
			b.WriteString(strconv.Quote(s))
		} else {
			fmt.Fprintf(b, "%v", v)
		}
		b.WriteByte('\n')
	case childNode:
		outlineNode(b, v.(*Node), depth)
	case childList:
		switch list := v.(type) {
		case []any:
			for _, item := range list {
				outlineValue(b, item, depth)
			}
		case []*Node:
			for _, item := range list {
				outlineValue(b, item, depth)
			}
		}
	}
}

func outlineNode(b *strings.Builder, n *Node, depth int) {
	indent(b, depth)
	name := TypeName(n)
	if name == "" {
		name = fmt.Sprintf("%T", n.Type)
	}
	b.WriteByte('<')
	b.WriteString(name)
	for _, k := range sortedPropNames(n) {
		fmt.Fprintf(b, " %s=%s", k, propText(n.Props[k]))
	}
	b.WriteString(">\n")
	if n.Props != nil {
		outlineValue(b, n.Props["children"], depth+1)
	}
}

func sortedPropNames(n *Node) []string {
	if len(n.Props) == 0 {
		return nil
	}
	names := make([]string, 0, len(n.Props))
	for k := range n.Props {
		if k == "children" {
			continue
		}
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// propText renders one prop value for outline display.
func propText(v any) string {
	switch val := v.(type) {
	case string:
		return strconv.Quote(val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case nil:
		return "null"
	}
	if reflect.TypeOf(v).Kind() == reflect.Func {
		return "func"
	}
	return fmt.Sprintf("%v", v)
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}
