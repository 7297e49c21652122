// Package jsontree is the JSON grammar for the editor: node variants, their
// rendering, and builders that seed an arena from an in-memory literal.
package jsontree

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/zmilan/sapling/internal/ast"
)

// Kind tags the JSON variant a Node holds.
type Kind int

const (
	Null Kind = iota
	True
	False
	Number
	String
	Array
	Object
)

var kindNames = [...]string{
	Null:   "null",
	True:   "true",
	False:  "false",
	Number: "number",
	String: "string",
	Array:  "array",
	Object: "object",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Field is one key of an object together with the ref of its value.
type Field struct {
	Key   string
	Value ast.Ref
}

// Node is a single JSON value. Text holds the literal digits of a Number or
// the contents of a String; Items and Fields hold child refs for containers.
type Node struct {
	Kind   Kind
	Text   string
	Items  []ast.Ref
	Fields []Field
}

// Children implements ast.Node.
func (n Node) Children() []ast.Ref {
	switch n.Kind {
	case Array:
		return append([]ast.Ref(nil), n.Items...)
	case Object:
		refs := make([]ast.Ref, len(n.Fields))
		for i, f := range n.Fields {
			refs[i] = f.Value
		}
		return refs
	}
	return nil
}

// ShallowEqual implements ast.Node. Object keys take part in the comparison
// because they are payload, not children.
func (n Node) ShallowEqual(other ast.Node) bool {
	o, ok := other.(Node)
	if !ok || o.Kind != n.Kind {
		return false
	}
	switch n.Kind {
	case Number, String:
		return o.Text == n.Text
	case Array:
		return len(o.Items) == len(n.Items)
	case Object:
		if len(o.Fields) != len(n.Fields) {
			return false
		}
		for i := range n.Fields {
			if o.Fields[i].Key != n.Fields[i].Key {
				return false
			}
		}
	}
	return true
}

// Render implements ast.Node.
func (n Node) Render(p *ast.Printer, depth int) error {
	switch n.Kind {
	case Array:
		if len(n.Items) == 0 {
			p.WriteString("[]")
			return nil
		}
		p.WriteString("[")
		for i, item := range n.Items {
			p.Newline(depth + 1)
			if err := p.Child(item, depth+1); err != nil {
				return err
			}
			if i < len(n.Items)-1 {
				p.WriteString(",")
			}
		}
		p.Newline(depth)
		p.WriteString("]")
	case Object:
		if len(n.Fields) == 0 {
			p.WriteString("{}")
			return nil
		}
		p.WriteString("{")
		for i, f := range n.Fields {
			p.Newline(depth + 1)
			p.WriteString(quote(f.Key))
			p.WriteString(":")
			p.Space()
			if err := p.Child(f.Value, depth+1); err != nil {
				return err
			}
			if i < len(n.Fields)-1 {
				p.WriteString(",")
			}
		}
		p.Newline(depth)
		p.WriteString("}")
	default:
		p.WriteString(scalarText(n.Kind, n.Text))
	}
	return nil
}

// WithoutChild returns a copy of a container with ref unlinked. It reports
// false when ref is not a direct child.
func (n Node) WithoutChild(ref ast.Ref) (Node, bool) {
	out := n
	switch n.Kind {
	case Array:
		out.Items = make([]ast.Ref, 0, len(n.Items))
		for _, item := range n.Items {
			if item != ref {
				out.Items = append(out.Items, item)
			}
		}
		return out, len(out.Items) != len(n.Items)
	case Object:
		out.Fields = make([]Field, 0, len(n.Fields))
		for _, f := range n.Fields {
			if f.Value != ref {
				out.Fields = append(out.Fields, f)
			}
		}
		return out, len(out.Fields) != len(n.Fields)
	}
	return n, false
}

// Label returns a short description used in status messages.
func (n Node) Label() string {
	switch n.Kind {
	case Number:
		return "number " + n.Text
	case String:
		return "string " + quote(n.Text)
	}
	return n.Kind.String()
}

func scalarText(kind Kind, text string) string {
	switch kind {
	case True:
		return "true"
	case False:
		return "false"
	case Number:
		if text == "" {
			return "0"
		}
		return text
	case String:
		return quote(text)
	}
	return "null"
}

func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return `""`
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
