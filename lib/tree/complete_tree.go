package tree

import (
	"iter"
	"math/bits"

	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/lib/queue"
)

// Every level is full except possibly the last one, which is filled
// from left to right.
type completeTree[E any] struct {
	binaryTree[E]
}

var _ CompleteTree[int] = (*completeTree[int])(nil)

func NewCompleteTree[E comparable]() CompleteTree[E] {
	tree, _ := NewCompleteTreeFunc[E](infra.ComparableEqual[E]())
	return tree
}

func NewCompleteTreeFunc[E any](eq infra.EqualFunc[E]) (CompleteTree[E], error) {
	if eq == nil {
		return nil, ErrInvalidArgument
	}
	return &completeTree[E]{
		binaryTree: binaryTree[E]{equal: eq},
	}, nil
}

// Insert places the element at the first vertex in BFS order missing
// a child, left first.
func (tree *completeTree[E]) Insert(e E) error {
	if infra.IsNil(e) {
		return ErrInvalidArgument
	}
	z := &node[E]{elem: e}
	tree.count++
	if tree.root == nil {
		tree.root = z
		return nil
	}
	q := queue.NewQueue[*node[E]]()
	q.Enqueue(tree.root)
	for !q.IsEmpty() {
		aux, _ := q.Dequeue()
		if aux.left == nil {
			aux.left, z.parent = z, aux
			return nil
		}
		if aux.right == nil {
			aux.right, z.parent = z, aux
			return nil
		}
		q.Enqueue(aux.left)
		q.Enqueue(aux.right)
	}
	// impossible run to here
	panic( /* debug assertion */ "[xtree] complete tree without free vertex")
}

// Delete swaps the element with the last vertex in BFS order and then
// detaches that vertex.
func (tree *completeTree[E]) Delete(e E) {
	z := tree.searchNode(e)
	if z == nil {
		return
	}
	last := tree.lastNode()
	z.elem, last.elem = last.elem, z.elem
	tree.detach(last)
	tree.count--
}

// Height is floor(log2(n)) for a complete tree.
func (tree *completeTree[E]) Height() int {
	if tree.count <= 0 {
		return -1
	}
	return bits.Len64(uint64(tree.count)) - 1
}

func (tree *completeTree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		bfsNodes(tree.root, func(n *node[E]) bool {
			return yield(n.elem)
		})
	}
}
