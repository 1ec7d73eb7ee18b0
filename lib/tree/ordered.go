package tree

import (
	"iter"

	"github.com/benz9527/xtree/lib/infra"
)

type OrderedTreeOpt[E any] func(*orderedTree[E]) error

// WithTreeDesc reverses the order of the comparator, so the in-order
// traversal yields the elements from the largest to the smallest.
func WithTreeDesc[E any]() OrderedTreeOpt[E] {
	return func(tree *orderedTree[E]) error {
		tree.isDesc = true
		return nil
	}
}

// The ordered layer shared by the bstree and the rbtree.
// Its rotations stay unexported, each variant decides whether to
// publish them.
type orderedTree[E any] struct {
	binaryTree[E]
	cmp          infra.Comparator[E]
	lastInserted *node[E]
	isDesc       bool
}

func (tree *orderedTree[E]) init(cmp infra.Comparator[E], opts ...OrderedTreeOpt[E]) error {
	if cmp == nil {
		return ErrInvalidArgument
	}
	for _, o := range opts {
		if err := o(tree); err != nil {
			return err
		}
	}
	if tree.isDesc {
		cmp = infra.ReverseComparator(cmp)
	}
	tree.cmp = cmp
	tree.equal = cmp.Equal()
	return nil
}

func (tree *orderedTree[E]) Clear() {
	tree.binaryTree.Clear()
	tree.lastInserted = nil
}

// Search prunes by the order. It checks the equality first, so a
// duplicate rotated to the right of its twin is still found.
func (tree *orderedTree[E]) Search(e E) (Node[E], bool) {
	if n := tree.searchNode(e); n != nil {
		return n, true
	}
	return nil, false
}

func (tree *orderedTree[E]) Contains(e E) bool {
	return tree.searchNode(e) != nil
}

func (tree *orderedTree[E]) searchNode(e E) *node[E] {
	for aux := tree.root; aux != nil; {
		res := tree.cmp(e, aux.elem)
		if res == 0 {
			return aux
		} else if res < 0 {
			aux = aux.left
		} else {
			aux = aux.right
		}
	}
	return nil
}

func (tree *orderedTree[E]) Min() (Node[E], error) {
	if tree.root == nil {
		return nil, ErrNotFound
	}
	return tree.root.minimum(), nil
}

func (tree *orderedTree[E]) Max() (Node[E], error) {
	if tree.root == nil {
		return nil, ErrNotFound
	}
	return tree.root.maximum(), nil
}

func (tree *orderedTree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		inOrderNodes(tree.root, func(n *node[E]) bool {
			return yield(n.elem)
		})
	}
}

func (tree *orderedTree[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		reverseInOrderNodes(tree.root, func(n *node[E]) bool {
			return yield(n.elem)
		})
	}
}

// Equal elements are placed on the left.
func (tree *orderedTree[E]) insertNode(e E) (*node[E], error) {
	if infra.IsNil(e) {
		return nil, ErrInvalidArgument
	}
	z := &node[E]{elem: e}
	if tree.root == nil {
		tree.root = z
	} else {
		x := tree.root
		for {
			if tree.cmp(e, x.elem) <= 0 {
				if x.left == nil {
					x.left = z
					break
				}
				x = x.left
			} else {
				if x.right == nil {
					x.right = z
					break
				}
				x = x.right
			}
		}
		z.parent = x
	}
	tree.count++
	tree.lastInserted = z
	return z, nil
}

// Swaps the elements of n and its in-order predecessor (the maximum of
// the left subtree), and returns the predecessor node.
// The n must have two children.
func (tree *orderedTree[E]) predecessorSwap(n *node[E]) *node[E] {
	pred := n.left.maximum()
	n.elem, pred.elem = pred.elem, n.elem
	return pred
}

// Replaces the n, with at most one child, by that child.
// Returns the child (may be nil).
func (tree *orderedTree[E]) splice(n *node[E]) *node[E] {
	child := n.left
	if child == nil {
		child = n.right
	}
	parent := n.parent
	switch n.direction() {
	case Root:
		tree.root = child
	case Left:
		parent.left = child
	case Right:
		parent.right = child
	}
	if child != nil {
		child.parent = parent
	}
	n.parent, n.left, n.right = nil, nil, nil
	if !n.phantom {
		tree.count--
	}
	return child
}

// Resolves a view back to the node, which must belong to this tree.
func (tree *orderedTree[E]) own(n Node[E]) (*node[E], error) {
	x, ok := n.(*node[E])
	if !ok || x == nil || x.phantom || tree.root == nil || x.top() != tree.root {
		return nil, ErrInvalidArgument
	}
	return x, nil
}

// Left rotation.
// Example:
//
//	  |                         |
//	  x                         y
//	 / \                       / \
//	a   y     ====>           x   c
//	   / \                   / \
//	  b   c                 a   b
//
// No-op if y is absent.
func (tree *orderedTree[E]) rotateLeft(x *node[E]) {
	if x == nil || x.right == nil {
		return
	}
	parent, dir, y := x.parent, x.direction(), x.right
	x.right, y.left = y.left, x
	x.fixLink()
	y.fixLink()
	switch dir {
	case Root:
		tree.root = y
	case Left:
		parent.left = y
	case Right:
		parent.right = y
	}
	y.parent = parent
}

// Right rotation.
// Example:
//
//	      |                   |
//	      y                   x
//	     / \                 / \
//	    x   c   ====>       a   y
//	   / \                     / \
//	  a   b                   b   c
//
// No-op if x is absent.
func (tree *orderedTree[E]) rotateRight(y *node[E]) {
	if y == nil || y.left == nil {
		return
	}
	parent, dir, x := y.parent, y.direction(), y.left
	y.left, x.right = x.right, y
	y.fixLink()
	x.fixLink()
	switch dir {
	case Root:
		tree.root = x
	case Left:
		parent.left = x
	case Right:
		parent.right = x
	}
	x.parent = parent
}
