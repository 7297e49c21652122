// Package arena stores every node of a tree in one flat, index-addressed slice.
// Nodes refer to each other only through ast.Ref handles issued by the store,
// never through pointers.
package arena

import (
	"fmt"

	"github.com/zmilan/sapling/internal/ast"
)

type slot[N ast.Node] struct {
	node N
	live bool
}

// Store owns the nodes of a single tree. A zero Store is ready to use.
type Store[N ast.Node] struct {
	slots []slot[N]
	live  int
}

// New returns an empty store.
func New[N ast.Node]() *Store[N] {
	return &Store[N]{}
}

// Insert appends n in a fresh slot and returns its handle.
func (s *Store[N]) Insert(n N) ast.Ref {
	s.slots = append(s.slots, slot[N]{node: n, live: true})
	s.live++
	return ast.Ref(len(s.slots) - 1)
}

// Get returns a copy of the node held at ref.
func (s *Store[N]) Get(ref ast.Ref) (N, error) {
	if err := s.check(ref); err != nil {
		var zero N
		return zero, err
	}
	return s.slots[ref].node, nil
}

// Modify runs fn against the node held at ref. The pointer handed to fn is
// only valid for the duration of the call.
func (s *Store[N]) Modify(ref ast.Ref, fn func(*N)) error {
	if err := s.check(ref); err != nil {
		return err
	}
	fn(&s.slots[ref].node)
	return nil
}

// Replace overwrites the node held at ref. The slot keeps its identity, so
// every other holder of ref observes the new node.
func (s *Store[N]) Replace(ref ast.Ref, n N) error {
	if err := s.check(ref); err != nil {
		return err
	}
	s.slots[ref].node = n
	return nil
}

// Remove turns the slot at ref into a tombstone. The caller is responsible
// for unlinking ref from its parent first.
func (s *Store[N]) Remove(ref ast.Ref) error {
	if err := s.check(ref); err != nil {
		return err
	}
	var zero N
	s.slots[ref] = slot[N]{node: zero}
	s.live--
	return nil
}

// Contains reports whether ref names a live slot.
func (s *Store[N]) Contains(ref ast.Ref) bool {
	return s.check(ref) == nil
}

// Len returns the number of slots ever allocated, tombstones included.
func (s *Store[N]) Len() int {
	return len(s.slots)
}

// Live returns the number of slots currently holding a node.
func (s *Store[N]) Live() int {
	return s.live
}

// Resolve implements ast.Resolver.
func (s *Store[N]) Resolve(ref ast.Ref) (ast.Node, error) {
	n, err := s.Get(ref)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (s *Store[N]) check(ref ast.Ref) error {
	if ref < 0 || int(ref) >= len(s.slots) {
		return fmt.Errorf("%w: %s out of range (%d slots)", ast.ErrInvalidReference, ref, len(s.slots))
	}
	if !s.slots[ref].live {
		return fmt.Errorf("%w: %s is a tombstone", ast.ErrInvalidReference, ref)
	}
	return nil
}
