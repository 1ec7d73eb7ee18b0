package tree

import "github.com/benz9527/xtree/lib/infra"

// The plain (unbalanced) binary search tree.
// Duplicates are allowed.
type bsTree[E any] struct {
	orderedTree[E]
}

var (
	_ BSTree[int] = (*bsTree[int])(nil)
	_ Rotator[int] = (*bsTree[int])(nil)
)

func NewBSTree[E infra.OrderedKey](opts ...OrderedTreeOpt[E]) (BSTree[E], error) {
	return NewBSTreeFunc[E](infra.OrderedComparator[E](), opts...)
}

// NewBSTreeFunc builds the tree over an external comparator.
func NewBSTreeFunc[E any](cmp infra.Comparator[E], opts ...OrderedTreeOpt[E]) (BSTree[E], error) {
	tree := &bsTree[E]{}
	if err := tree.init(cmp, opts...); err != nil {
		return nil, err
	}
	return tree, nil
}

func (tree *bsTree[E]) Insert(e E) error {
	_, err := tree.insertNode(e)
	return err
}

func (tree *bsTree[E]) LastInserted() (Node[E], error) {
	if tree.lastInserted == nil {
		return nil, ErrNotFound
	}
	return tree.lastInserted, nil
}

func (tree *bsTree[E]) Delete(e E) {
	tree.lastInserted = nil
	z := tree.searchNode(e)
	if z == nil {
		return
	}
	if z.left != nil && z.right != nil {
		z = tree.predecessorSwap(z)
	}
	tree.splice(z)
}

func (tree *bsTree[E]) RotateLeft(n Node[E]) error {
	x, err := tree.own(n)
	if err != nil {
		return err
	}
	tree.rotateLeft(x)
	tree.lastInserted = nil
	return nil
}

func (tree *bsTree[E]) RotateRight(n Node[E]) error {
	y, err := tree.own(n)
	if err != nil {
		return err
	}
	tree.rotateRight(y)
	tree.lastInserted = nil
	return nil
}

// Foreach iterates the elements in order.
func (tree *bsTree[E]) Foreach(action func(idx int64, e E) bool) {
	var idx int64 = 0
	inOrderNodes(tree.root, func(n *node[E]) bool {
		res := action(idx, n.elem)
		idx++
		return res
	})
}

// RotateLeft rotates the tree if it publishes the rotations.
// The self balancing trees don't, they return ErrUnsupportedOperation.
func RotateLeft[E any](tree BinaryTree[E], n Node[E]) error {
	if r, ok := tree.(Rotator[E]); ok {
		return r.RotateLeft(n)
	}
	return ErrUnsupportedOperation
}

func RotateRight[E any](tree BinaryTree[E], n Node[E]) error {
	if r, ok := tree.(Rotator[E]); ok {
		return r.RotateRight(n)
	}
	return ErrUnsupportedOperation
}
