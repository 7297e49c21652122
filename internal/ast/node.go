// Package ast defines the contract a grammar's node type satisfies so trees of
// it can be stored in an arena, rendered and edited generically.
package ast

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidReference reports a Ref that does not resolve to a live node.
	// Seeing it means a structural invariant was broken.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrCycle reports a child reference that points back at one of its ancestors.
	ErrCycle = errors.New("reference cycle")
)

// Ref is a handle to a slot inside one node store. Two refs are equal when
// they name the same slot, regardless of what the slot holds.
type Ref int

// NoRef is the zero handle that never names a slot.
const NoRef Ref = -1

func (r Ref) String() string {
	if r == NoRef {
		return "<none>"
	}
	return "#" + strconv.Itoa(int(r))
}

// Node is implemented by every grammar node type.
type Node interface {
	// Children lists the direct children in display order.
	Children() []Ref
	// Render writes the node and its subtree through p. It must not mutate
	// any store.
	Render(p *Printer, depth int) error
	// ShallowEqual compares variant and payload, treating child refs as
	// opaque; only the number and labels of children matter.
	ShallowEqual(other Node) bool
}

// Resolver looks nodes up by reference.
type Resolver interface {
	Resolve(ref Ref) (Node, error)
}
