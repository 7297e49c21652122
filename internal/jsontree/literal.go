package jsontree

import (
	"strings"

	"github.com/zmilan/sapling/internal/arena"
	"github.com/zmilan/sapling/internal/ast"
)

// Literal is a JSON value held as a plain nested structure, outside any store.
type Literal struct {
	Kind   Kind
	Text   string
	Items  []Literal
	Fields []Pair
}

// Pair is one key/value entry of an object literal.
type Pair struct {
	Key   string
	Value Literal
}

// NullLit, TrueLit and FalseLit build the keyword literals.
func NullLit() Literal  { return Literal{Kind: Null} }
func TrueLit() Literal  { return Literal{Kind: True} }
func FalseLit() Literal { return Literal{Kind: False} }

// Bool returns TrueLit or FalseLit.
func Bool(b bool) Literal {
	if b {
		return TrueLit()
	}
	return FalseLit()
}

// Num builds a number literal. text is kept as written and must be a JSON
// number.
func Num(text string) Literal { return Literal{Kind: Number, Text: text} }

// Str builds a string literal from unquoted text.
func Str(text string) Literal { return Literal{Kind: String, Text: text} }

// Arr builds an array literal.
func Arr(items ...Literal) Literal {
	return Literal{Kind: Array, Items: items}
}

// Obj builds an object literal; pairs keep their order.
func Obj(pairs ...Pair) Literal {
	return Literal{Kind: Object, Fields: pairs}
}

// P is shorthand for one object entry.
func P(key string, value Literal) Pair {
	return Pair{Key: key, Value: value}
}

// DefaultLiteral is the document the editor opens with when no seed is given.
func DefaultLiteral() Literal {
	return Arr(TrueLit(), FalseLit(), Obj(P("value", TrueLit())))
}

// Build inserts lit into a fresh store and returns the store with the root ref.
func Build(lit Literal) (*arena.Store[Node], ast.Ref) {
	nodes := arena.New[Node]()
	root := Insert(nodes, lit)
	return nodes, root
}

// Insert adds lit to nodes bottom-up: children receive their refs before the
// parent that lists them is stored.
func Insert(nodes *arena.Store[Node], lit Literal) ast.Ref {
	switch lit.Kind {
	case Array:
		items := make([]ast.Ref, len(lit.Items))
		for i, item := range lit.Items {
			items[i] = Insert(nodes, item)
		}
		return nodes.Insert(Node{Kind: Array, Items: items})
	case Object:
		fields := make([]Field, len(lit.Fields))
		for i, pair := range lit.Fields {
			fields[i] = Field{Key: pair.Key, Value: Insert(nodes, pair.Value)}
		}
		return nodes.Insert(Node{Kind: Object, Fields: fields})
	}
	return nodes.Insert(Node{Kind: lit.Kind, Text: lit.Text})
}

// RenderLiteral formats lit directly, without going through a store.
func RenderLiteral(lit Literal, style ast.FormatStyle) string {
	var b strings.Builder
	writeLiteral(&b, lit, style, 0)
	return b.String()
}

func writeLiteral(b *strings.Builder, lit Literal, style ast.FormatStyle, depth int) {
	newline := func(d int) {
		if style.IsCompact() {
			return
		}
		b.WriteString("\n" + strings.Repeat(" ", d*style.Indent))
	}
	switch lit.Kind {
	case Array:
		if len(lit.Items) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[")
		for i, item := range lit.Items {
			if i > 0 {
				b.WriteString(",")
			}
			newline(depth + 1)
			writeLiteral(b, item, style, depth+1)
		}
		newline(depth)
		b.WriteString("]")
	case Object:
		if len(lit.Fields) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{")
		for i, pair := range lit.Fields {
			if i > 0 {
				b.WriteString(",")
			}
			newline(depth + 1)
			b.WriteString(quote(pair.Key) + ":")
			if !style.IsCompact() {
				b.WriteString(" ")
			}
			writeLiteral(b, pair.Value, style, depth+1)
		}
		newline(depth)
		b.WriteString("}")
	default:
		b.WriteString(scalarText(lit.Kind, lit.Text))
	}
}
