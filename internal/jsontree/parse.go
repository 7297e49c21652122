package jsontree

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	yamlast "github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"
	"github.com/tidwall/jsonc"
)

// ErrUnsupportedValue is returned when a parsed document holds something
// JSON cannot express, such as NaN.
var ErrUnsupportedValue = errors.New("unsupported value")

// ParseLiteral decodes an inline JSON (or YAML) document into a Literal,
// keeping object keys in document order and numbers as written. JSON
// documents may carry // and /* */ comments and trailing commas.
func ParseLiteral(text string) (Literal, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Literal{}, errors.New("empty document")
	}
	data := []byte(text)
	if trimmed[0] == '{' || trimmed[0] == '[' {
		data = jsonc.ToJSON(data)
	}
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return Literal{}, fmt.Errorf("parse document: %w", err)
	}
	var docs []*yamlast.DocumentNode
	for _, doc := range file.Docs {
		if doc != nil && doc.Body != nil {
			docs = append(docs, doc)
		}
	}
	switch len(docs) {
	case 0:
		return Literal{}, errors.New("empty document")
	case 1:
	default:
		return Literal{}, fmt.Errorf("expected one document, got %d", len(docs))
	}
	c := converter{anchors: map[string]yamlast.Node{}}
	return c.literal(docs[0].Body)
}

// converter turns a YAML syntax tree into a Literal. It works on the tree
// rather than decoded values so number tokens keep their source text.
type converter struct {
	anchors map[string]yamlast.Node
	depth   int
}

const maxAliasDepth = 64

func (c *converter) literal(node yamlast.Node) (Literal, error) {
	switch n := node.(type) {
	case nil:
		return NullLit(), nil
	case *yamlast.NullNode:
		return NullLit(), nil
	case *yamlast.BoolNode:
		return Bool(n.Value), nil
	case *yamlast.IntegerNode:
		return integerLiteral(n)
	case *yamlast.FloatNode:
		if text := tokenText(n.Token); isJSONNumber(text) {
			return Num(text), nil
		}
		return floatLiteral(n.Value)
	case *yamlast.InfinityNode, *yamlast.NanNode:
		return Literal{}, fmt.Errorf("%w: %s", ErrUnsupportedValue, tokenText(node.GetToken()))
	case *yamlast.StringNode:
		if plain(n.Token) && isJSONNumber(n.Value) {
			return Num(n.Value), nil
		}
		return Str(n.Value), nil
	case *yamlast.LiteralNode:
		if n.Value == nil {
			return Str(""), nil
		}
		return Str(n.Value.Value), nil
	case *yamlast.SequenceNode:
		var items []Literal
		for i, item := range n.Values {
			lit, err := c.literal(item)
			if err != nil {
				return Literal{}, fmt.Errorf("item %d: %w", i, err)
			}
			items = append(items, lit)
		}
		return Arr(items...), nil
	case *yamlast.MappingNode:
		return c.mapping(n.Values)
	case *yamlast.MappingValueNode:
		return c.mapping([]*yamlast.MappingValueNode{n})
	case *yamlast.AnchorNode:
		if name := anchorName(n.Name); name != "" {
			c.anchors[name] = n.Value
		}
		return c.literal(n.Value)
	case *yamlast.AliasNode:
		name := anchorName(n.Value)
		target, ok := c.anchors[name]
		if !ok {
			return Literal{}, fmt.Errorf("unknown alias %q", name)
		}
		if c.depth >= maxAliasDepth {
			return Literal{}, fmt.Errorf("alias %q nested too deeply", name)
		}
		c.depth++
		defer func() { c.depth-- }()
		return c.literal(target)
	case *yamlast.TagNode:
		return c.literal(n.Value)
	}
	return Literal{}, fmt.Errorf("%w: %s", ErrUnsupportedValue, node.Type())
}

func (c *converter) mapping(values []*yamlast.MappingValueNode) (Literal, error) {
	var pairs []Pair
	for _, mv := range values {
		if mv.Key != nil && mv.Key.IsMergeKey() {
			return Literal{}, fmt.Errorf("%w: merge key", ErrUnsupportedValue)
		}
		key := keyText(mv.Key)
		lit, err := c.literal(mv.Value)
		if err != nil {
			return Literal{}, fmt.Errorf("key %q: %w", key, err)
		}
		pairs = append(pairs, P(key, lit))
	}
	return Obj(pairs...), nil
}

func integerLiteral(n *yamlast.IntegerNode) (Literal, error) {
	if text := tokenText(n.Token); isJSONNumber(text) {
		return Num(text), nil
	}
	switch v := n.Value.(type) {
	case int64:
		return Num(strconv.FormatInt(v, 10)), nil
	case uint64:
		return Num(strconv.FormatUint(v, 10)), nil
	}
	return Literal{}, fmt.Errorf("%w: integer %s", ErrUnsupportedValue, tokenText(n.Token))
}

func floatLiteral(f float64) (Literal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Literal{}, fmt.Errorf("%w: %v", ErrUnsupportedValue, f)
	}
	return Num(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

func keyText(key yamlast.MapKeyNode) string {
	switch k := key.(type) {
	case nil:
		return ""
	case *yamlast.StringNode:
		return k.Value
	case *yamlast.MappingKeyNode:
		if k.Value != nil {
			return tokenText(k.Value.GetToken())
		}
		return ""
	}
	return tokenText(key.GetToken())
}

func anchorName(node yamlast.Node) string {
	if s, ok := node.(*yamlast.StringNode); ok {
		return s.Value
	}
	if node == nil {
		return ""
	}
	return tokenText(node.GetToken())
}

func tokenText(tk *token.Token) string {
	if tk == nil {
		return ""
	}
	return tk.Value
}

// plain reports whether a scalar was written without quotes.
func plain(tk *token.Token) bool {
	if tk == nil {
		return true
	}
	return tk.Type != token.SingleQuoteType && tk.Type != token.DoubleQuoteType
}

// isJSONNumber reports whether s is a number in JSON's own grammar, so
// YAML-only spellings such as 0x1F, +1 or 1_000 are normalised first.
func isJSONNumber(s string) bool {
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return false
	}
	return json.Valid([]byte(s))
}
