package tree

import (
	"fmt"

	"github.com/zmilan/sapling/internal/ast"
)

// SelectParent moves the selection to the parent of the selected node.
func (t *Tree[N]) SelectParent() error {
	parent, _, err := t.parentOf(t.selected)
	if err != nil {
		return err
	}
	if parent == ast.NoRef {
		return fmt.Errorf("%w: the root has no parent", ErrNoSuchNode)
	}
	return t.selectRef(parent)
}

// SelectFirstChild moves the selection to the first child of the selected node.
func (t *Tree[N]) SelectFirstChild() error {
	n, err := t.SelectedNode()
	if err != nil {
		return err
	}
	children := n.Children()
	if len(children) == 0 {
		return fmt.Errorf("%w: %s has no children", ErrNoSuchNode, t.selected)
	}
	return t.selectRef(children[0])
}

// SelectNextSibling moves the selection one child to the right.
func (t *Tree[N]) SelectNextSibling() error {
	return t.selectSibling(1)
}

// SelectPrevSibling moves the selection one child to the left.
func (t *Tree[N]) SelectPrevSibling() error {
	return t.selectSibling(-1)
}

func (t *Tree[N]) selectSibling(delta int) error {
	parent, index, err := t.parentOf(t.selected)
	if err != nil {
		return err
	}
	if parent == ast.NoRef {
		return fmt.Errorf("%w: the root has no siblings", ErrNoSuchNode)
	}
	p, err := t.nodes.Get(parent)
	if err != nil {
		return err
	}
	siblings := p.Children()
	target := index + delta
	if target < 0 || target >= len(siblings) {
		return fmt.Errorf("%w: no sibling at position %d", ErrNoSuchNode, target)
	}
	return t.selectRef(siblings[target])
}

// selectRef commits a new selection only after checking the slot is live.
func (t *Tree[N]) selectRef(ref ast.Ref) error {
	if !t.nodes.Contains(ref) {
		return fmt.Errorf("%w: %s", ErrNoSuchNode, ref)
	}
	t.selected = ref
	return nil
}

// parentOf walks down from the root looking for the node that lists ref as
// a child. The root's parent is ast.NoRef.
func (t *Tree[N]) parentOf(ref ast.Ref) (ast.Ref, int, error) {
	if ref == t.root {
		return ast.NoRef, -1, nil
	}
	stack := []ast.Ref{t.root}
	seen := map[ast.Ref]struct{}{}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[cur]; ok {
			continue
		}
		seen[cur] = struct{}{}
		n, err := t.nodes.Get(cur)
		if err != nil {
			return ast.NoRef, -1, err
		}
		for i, child := range n.Children() {
			if child == ref {
				return cur, i, nil
			}
			stack = append(stack, child)
		}
	}
	return ast.NoRef, -1, fmt.Errorf("%w: %s is not reachable from the root", ErrInvalidSelection, ref)
}
