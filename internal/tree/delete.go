package tree

import (
	"fmt"

	"github.com/zmilan/sapling/internal/ast"
)

// DeleteSelected unlinks the selected node from its parent, tombstones its
// subtree and selects the parent. The root cannot be deleted.
func (t *Tree[N]) DeleteSelected() error {
	parent, _, err := t.parentOf(t.selected)
	if err != nil {
		return err
	}
	if parent == ast.NoRef {
		return fmt.Errorf("%w: the root cannot be deleted", ErrNoSuchNode)
	}
	p, err := t.nodes.Get(parent)
	if err != nil {
		return err
	}
	remover, ok := any(p).(ChildRemover[N])
	if !ok {
		return fmt.Errorf("%w: %T cannot remove children", ErrUnsupported, p)
	}
	updated, ok := remover.WithoutChild(t.selected)
	if !ok {
		return fmt.Errorf("%w: %s is not a child of %s", ErrNoSuchNode, t.selected, parent)
	}
	if err := t.nodes.Replace(parent, updated); err != nil {
		return err
	}
	removed := t.selected
	t.selected = parent
	return t.prune(removed)
}

// prune tombstones ref and everything below it.
func (t *Tree[N]) prune(ref ast.Ref) error {
	n, err := t.nodes.Get(ref)
	if err != nil {
		return err
	}
	for _, child := range n.Children() {
		if !t.nodes.Contains(child) {
			continue
		}
		if err := t.prune(child); err != nil {
			return err
		}
	}
	return t.nodes.Remove(ref)
}
