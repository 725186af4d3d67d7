package confignode

import (
	"errors"
	"fmt"
)

// MaxDepth bounds traversal recursion. Config formats have no
// back-references, so any tree deeper than this is adversarial or corrupt.
const MaxDepth = 1000

// ErrMalformedTree is returned when traversal exceeds MaxDepth or meets a
// node of no known kind. Check with errors.Is.
var ErrMalformedTree = errors.New("malformed config tree")

// VisitFunc receives each string scalar in traversal order. Returning a
// non-nil error stops the walk and propagates the error unchanged.
type VisitFunc func(p Path, value string) error

// WalkStrings traverses root depth-first in pre-order, mapping entries in
// insertion order and sequence items in index order, and invokes fn for every
// string-typed scalar leaf. Number, bool and null scalars are skipped: they
// cannot carry high-entropy secret text and flagging them is pure noise.
//
// The walk holds no state between calls, so a fresh traversal of the same
// root repeats the exact same visit sequence. The root is never mutated.
func WalkStrings(root *Node, fn VisitFunc) error {
	if root == nil {
		return nil
	}
	return walk(root, Path{}, 0, fn)
}

func walk(n *Node, p Path, depth int, fn VisitFunc) error {
	if depth > MaxDepth {
		return fmt.Errorf("%w: depth limit %d exceeded at %q", ErrMalformedTree, MaxDepth, p.String())
	}
	switch n.Kind {
	case KindScalar:
		if n.Scalar == StringScalar {
			return fn(p, n.Value)
		}
		return nil
	case KindMapping:
		for _, pair := range n.Pairs {
			if pair.Value == nil {
				continue
			}
			if err := walk(pair.Value, p.Child(pair.Key), depth+1, fn); err != nil {
				return err
			}
		}
		return nil
	case KindSequence:
		for i, item := range n.Items {
			if item == nil {
				continue
			}
			if err := walk(item, p.At(i), depth+1, fn); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%w: unknown node kind %d at %q", ErrMalformedTree, n.Kind, p.String())
}
