package tree

import "github.com/benz9527/xtree/lib/queue"

// All the tree variants share the same node shape. The color is unused
// (ColorNone) outside the rbtree.
// The parent is a back-reference for navigation only, the ownership
// always flows from parent to child.
type node[E any] struct {
	parent  *node[E]
	left    *node[E]
	right   *node[E]
	elem    E
	color   Color
	phantom bool
}

var _ Node[int] = (*node[int])(nil)

func (n *node[E]) HasParent() bool {
	return n != nil && n.parent != nil
}

func (n *node[E]) HasLeft() bool {
	return n != nil && n.left != nil
}

func (n *node[E]) HasRight() bool {
	return n != nil && n.right != nil
}

func (n *node[E]) Parent() (Node[E], error) {
	if n == nil || n.parent == nil {
		return nil, ErrNotFound
	}
	return n.parent, nil
}

func (n *node[E]) Left() (Node[E], error) {
	if n == nil || n.left == nil {
		return nil, ErrNotFound
	}
	return n.left, nil
}

func (n *node[E]) Right() (Node[E], error) {
	if n == nil || n.right == nil {
		return nil, ErrNotFound
	}
	return n.right, nil
}

func (n *node[E]) Value() (e E) {
	if n == nil {
		return
	}
	return n.elem
}

func (n *node[E]) Color() Color {
	if n == nil {
		return Black
	}
	return n.color
}

func (n *node[E]) Height() int {
	return heightOf(n)
}

func (n *node[E]) Depth() int {
	if n == nil {
		return -1
	}
	depth := 0
	for aux := n.parent; aux != nil; aux = aux.parent {
		depth++
	}
	return depth
}

func (n *node[E]) isRed() bool {
	return n != nil && n.color == Red
}

// A nil node is a black nil leaf.
func (n *node[E]) isBlack() bool {
	return n == nil || n.color == Black
}

func (n *node[E]) isRoot() bool {
	return n != nil && n.parent == nil
}

func (n *node[E]) isLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

func (n *node[E]) direction() Direction {
	if n == nil {
		// impossible run to here
		panic( /* debug assertion */ "[xtree] nil node without direction")
	}
	if n.parent == nil {
		return Root
	}
	if n == n.parent.left {
		return Left
	}
	return Right
}

func (n *node[E]) sibling() *node[E] {
	switch n.direction() {
	case Left:
		return n.parent.right
	case Right:
		return n.parent.left
	default:
	}
	return nil
}

func (n *node[E]) uncle() *node[E] {
	return n.parent.sibling()
}

func (n *node[E]) grandpa() *node[E] {
	return n.parent.parent
}

func (n *node[E]) fixLink() {
	if n.left != nil {
		n.left.parent = n
	}
	if n.right != nil {
		n.right.parent = n
	}
}

func (n *node[E]) minimum() *node[E] {
	aux := n
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (n *node[E]) maximum() *node[E] {
	aux := n
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// The topmost ancestor, used to check which tree the node belongs to.
func (n *node[E]) top() *node[E] {
	aux := n
	for ; aux != nil && aux.parent != nil; aux = aux.parent {
	}
	return aux
}

// Level order counting, so a skewed tree never overflows the goroutine stack.
func heightOf[E any](n *node[E]) int {
	if n == nil {
		return -1
	}
	q := queue.NewQueue[*node[E]]()
	q.Enqueue(n)
	height := -1
	for !q.IsEmpty() {
		height++
		for i := q.Len(); i > 0; i-- {
			aux, _ := q.Dequeue()
			if aux.left != nil {
				q.Enqueue(aux.left)
			}
			if aux.right != nil {
				q.Enqueue(aux.right)
			}
		}
	}
	return height
}

// Traversals over the raw nodes, the fn returns false to stop.

func bfsNodes[E any](root *node[E], fn func(*node[E]) bool) bool {
	if root == nil {
		return true
	}
	q := queue.NewQueue[*node[E]]()
	q.Enqueue(root)
	for !q.IsEmpty() {
		aux, _ := q.Dequeue()
		if !fn(aux) {
			return false
		}
		if aux.left != nil {
			q.Enqueue(aux.left)
		}
		if aux.right != nil {
			q.Enqueue(aux.right)
		}
	}
	return true
}

func preOrderNodes[E any](root *node[E], fn func(*node[E]) bool) bool {
	if root == nil {
		return true
	}
	stack := queue.NewStack[*node[E]]()
	stack.Push(root)
	for !stack.IsEmpty() {
		aux, _ := stack.Pop()
		if !fn(aux) {
			return false
		}
		if aux.right != nil {
			stack.Push(aux.right)
		}
		if aux.left != nil {
			stack.Push(aux.left)
		}
	}
	return true
}

func inOrderNodes[E any](root *node[E], fn func(*node[E]) bool) bool {
	stack := queue.NewStack[*node[E]]()
	for aux := root; aux != nil || !stack.IsEmpty(); {
		for ; aux != nil; aux = aux.left {
			stack.Push(aux)
		}
		aux, _ = stack.Pop()
		if !fn(aux) {
			return false
		}
		aux = aux.right
	}
	return true
}

func reverseInOrderNodes[E any](root *node[E], fn func(*node[E]) bool) bool {
	stack := queue.NewStack[*node[E]]()
	for aux := root; aux != nil || !stack.IsEmpty(); {
		for ; aux != nil; aux = aux.right {
			stack.Push(aux)
		}
		aux, _ = stack.Pop()
		if !fn(aux) {
			return false
		}
		aux = aux.left
	}
	return true
}

func postOrderNodes[E any](root *node[E], fn func(*node[E]) bool) bool {
	stack := queue.NewStack[*node[E]]()
	var last *node[E]
	for aux := root; aux != nil || !stack.IsEmpty(); {
		if aux != nil {
			stack.Push(aux)
			aux = aux.left
			continue
		}
		peek, _ := stack.Peek()
		if peek.right != nil && peek.right != last {
			aux = peek.right
			continue
		}
		if !fn(peek) {
			return false
		}
		last, _ = stack.Pop()
	}
	return true
}
