package tree

import (
	"strings"

	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/lib/queue"
)

// The core of every tree variant. It owns the nodes but knows nothing
// about the order of the elements.
type binaryTree[E any] struct {
	root  *node[E]
	count int64
	equal infra.EqualFunc[E]
}

func (tree *binaryTree[E]) Len() int64 {
	return tree.count
}

func (tree *binaryTree[E]) IsEmpty() bool {
	return tree.count == 0
}

// Clear unlinks all nodes iteratively to help the GC.
func (tree *binaryTree[E]) Clear() {
	if tree.root == nil {
		return
	}
	stack := queue.NewStack[*node[E]]()
	stack.Push(tree.root)
	for !stack.IsEmpty() {
		aux, _ := stack.Pop()
		if aux.left != nil {
			stack.Push(aux.left)
		}
		if aux.right != nil {
			stack.Push(aux.right)
		}
		aux.parent, aux.left, aux.right = nil, nil, nil
	}
	tree.root = nil
	tree.count = 0
}

func (tree *binaryTree[E]) Root() (Node[E], error) {
	if tree.root == nil {
		return nil, ErrNotFound
	}
	return tree.root, nil
}

func (tree *binaryTree[E]) Height() int {
	return heightOf(tree.root)
}

func (tree *binaryTree[E]) Depth(n Node[E]) int {
	if n == nil {
		return -1
	}
	return n.Depth()
}

// Search walks the whole tree in pre-order, there is no order to prune with.
func (tree *binaryTree[E]) Search(e E) (Node[E], bool) {
	if n := tree.searchNode(e); n != nil {
		return n, true
	}
	return nil, false
}

func (tree *binaryTree[E]) Contains(e E) bool {
	return tree.searchNode(e) != nil
}

func (tree *binaryTree[E]) searchNode(e E) *node[E] {
	var target *node[E]
	preOrderNodes(tree.root, func(n *node[E]) bool {
		if tree.equal(n.elem, e) {
			target = n
			return false
		}
		return true
	})
	return target
}

func (tree *binaryTree[E]) Equal(other BinaryTree[E]) bool {
	if other == nil {
		return false
	}
	r1, err1 := tree.Root()
	r2, err2 := other.Root()
	if err1 != nil || err2 != nil {
		return err1 != nil && err2 != nil
	}
	type pair struct {
		a, b Node[E]
	}
	stack := queue.NewStack[pair]()
	stack.Push(pair{a: r1, b: r2})
	for !stack.IsEmpty() {
		p, _ := stack.Pop()
		if p.a.HasLeft() != p.b.HasLeft() ||
			p.a.HasRight() != p.b.HasRight() ||
			p.a.Color() != p.b.Color() ||
			!tree.equal(p.a.Value(), p.b.Value()) {
			return false
		}
		if p.a.HasLeft() {
			l1, _ := p.a.Left()
			l2, _ := p.b.Left()
			stack.Push(pair{a: l1, b: l2})
		}
		if p.a.HasRight() {
			r1, _ := p.a.Right()
			r2, _ := p.b.Right()
			stack.Push(pair{a: r1, b: r2})
		}
	}
	return true
}

func (tree *binaryTree[E]) BFS(visit func(n Node[E])) {
	bfsNodes(tree.root, viewOf(visit))
}

func (tree *binaryTree[E]) PreOrder(visit func(n Node[E])) {
	preOrderNodes(tree.root, viewOf(visit))
}

func (tree *binaryTree[E]) InOrder(visit func(n Node[E])) {
	inOrderNodes(tree.root, viewOf(visit))
}

func (tree *binaryTree[E]) PostOrder(visit func(n Node[E])) {
	postOrderNodes(tree.root, viewOf(visit))
}

func (tree *binaryTree[E]) String() string {
	var sb strings.Builder
	if tree.root != nil {
		_ = renderNodes[E](&sb, tree.root, &renderConfig{})
	}
	return sb.String()
}

// The last vertex in BFS order.
func (tree *binaryTree[E]) lastNode() *node[E] {
	var last *node[E]
	bfsNodes(tree.root, func(n *node[E]) bool {
		last = n
		return true
	})
	return last
}

// Detaches a leaf from its parent.
func (tree *binaryTree[E]) detach(n *node[E]) {
	switch n.direction() {
	case Root:
		tree.root = nil
	case Left:
		n.parent.left = nil
	case Right:
		n.parent.right = nil
	}
	n.parent = nil
}

func viewOf[E any](visit func(n Node[E])) func(*node[E]) bool {
	return func(n *node[E]) bool {
		if visit != nil {
			visit(n)
		}
		return true
	}
}
