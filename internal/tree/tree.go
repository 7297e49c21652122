// Package tree wraps a node store with a selection cursor and the structural
// edits the editor performs on it.
package tree

import (
	"errors"
	"fmt"

	"github.com/zmilan/sapling/internal/arena"
	"github.com/zmilan/sapling/internal/ast"
)

var (
	// ErrInvalidSelection reports a selection that no longer names a live node.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrNoSuchNode reports a move or delete whose destination does not exist.
	ErrNoSuchNode = errors.New("no such node")
	// ErrUnsupported reports an edit the node type cannot perform.
	ErrUnsupported = errors.New("unsupported by node type")
)

// ChildRemover is implemented by node types whose children can be unlinked.
type ChildRemover[N any] interface {
	WithoutChild(ref ast.Ref) (N, bool)
}

// Tree is an arena of nodes plus the currently selected node.
type Tree[N ast.Node] struct {
	nodes    *arena.Store[N]
	root     ast.Ref
	selected ast.Ref
}

// New wraps nodes, selecting root.
func New[N ast.Node](nodes *arena.Store[N], root ast.Ref) *Tree[N] {
	return &Tree[N]{nodes: nodes, root: root, selected: root}
}

// Store returns the arena backing the tree.
func (t *Tree[N]) Store() *arena.Store[N] { return t.nodes }

// Root returns the designated root reference. It never changes.
func (t *Tree[N]) Root() ast.Ref { return t.root }

// Selected returns the reference of the selected node.
func (t *Tree[N]) Selected() ast.Ref { return t.selected }

// SelectedNode returns the node under the cursor.
func (t *Tree[N]) SelectedNode() (N, error) {
	n, err := t.nodes.Get(t.selected)
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrInvalidSelection, err)
	}
	return n, nil
}

// ToText renders the whole tree.
func (t *Tree[N]) ToText(style ast.FormatStyle) (string, error) {
	return ast.Render(t.nodes, t.root, style)
}

// Render renders the whole tree and reports where the selected node's text
// lies in the output.
func (t *Tree[N]) Render(style ast.FormatStyle) (string, ast.Span, error) {
	p := ast.NewPrinter(t.nodes, style)
	p.Mark(t.selected)
	if err := p.Child(t.root, 0); err != nil {
		return "", ast.Span{}, err
	}
	span, ok := p.MarkedSpan()
	if !ok {
		return "", ast.Span{}, fmt.Errorf("%w: %s is not reachable from the root", ErrInvalidSelection, t.selected)
	}
	return p.String(), span, nil
}

// ReplaceSelected overwrites the selected node in place. The selection keeps
// pointing at the same slot, which now holds n.
func (t *Tree[N]) ReplaceSelected(n N) error {
	if err := t.nodes.Replace(t.selected, n); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSelection, err)
	}
	return nil
}
