package tree

import "github.com/benz9527/xtree/lib/queue"

func isBlack[E any](n Node[E]) bool {
	return n == nil || n.Color() == Black
}

func isRed[E any](n Node[E]) bool {
	return n != nil && n.Color() == Red
}

func leftOf[E any](n Node[E]) Node[E] {
	l, err := n.Left()
	if err != nil {
		return nil
	}
	return l
}

func rightOf[E any](n Node[E]) Node[E] {
	r, err := n.Right()
	if err != nil {
		return nil
	}
	return r
}

func parentOf[E any](n Node[E]) Node[E] {
	p, err := n.Parent()
	if err != nil {
		return nil
	}
	return p
}

// Counts the black nodes from target up to the root, both included.
func blackDepthOf[E any](target Node[E]) int {
	depth := 0
	for aux := target; aux != nil; aux = parentOf(aux) {
		if isBlack(aux) {
			depth++
		}
	}
	return depth
}

// rbtree rule validation utilities.
// They work on any colored BinaryTree through the node views only.

// References:
// https://github1s.com/minghu6/rust-minghu6/blob/master/coll_st/src/bst/rb.rs

// Inorder traversal to validate the root is black, every node is red
// or black and no red node has a red child.
func RedViolationValidate[E any](tree BinaryTree[E]) error {
	aux, err := tree.Root()
	if err != nil {
		return nil
	}
	if !isBlack(aux) {
		return ErrRedViolation
	}

	stack := queue.NewStack[Node[E]]()
	for ; aux != nil; aux = leftOf(aux) {
		stack.Push(aux)
	}
	for !stack.IsEmpty() {
		aux, _ = stack.Pop()
		if c := aux.Color(); c != Red && c != Black {
			return ErrRedViolation
		}
		if isRed(aux) && (isRed(leftOf(aux)) || isRed(rightOf(aux))) {
			return ErrRedViolation
		}
		for aux = rightOf(aux); aux != nil; aux = leftOf(aux) {
			stack.Push(aux)
		}
	}
	return nil
}

// BFS traversal to load all nodes missing at least one child.
func bfsLeaves[E any](tree BinaryTree[E]) []Node[E] {
	aux, err := tree.Root()
	if err != nil {
		return nil
	}

	leaves := make([]Node[E], 0, tree.Len()>>1+1)
	q := queue.NewQueue[Node[E]]()
	q.Enqueue(aux)
	for !q.IsEmpty() {
		aux, _ = q.Dequeue()
		l, r := leftOf(aux), rightOf(aux)
		if /* nil leaves, keep one */ l == nil || r == nil {
			leaves = append(leaves, aux)
		}
		if l != nil {
			q.Enqueue(l)
		}
		if r != nil {
			q.Enqueue(r)
		}
	}
	return leaves
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).

	        [13]
			/  \
		 <8>    [15]
		 / \    /  \
	  [6] [11] [14] [17]
	  /              /
	<1>            [16]

2-3-4 tree like:

	       <8> --- [13] --- <15>
		  /  \             /    \
		 /    \           /      \
	  <1>-[6][11]      [14] <16>-[17]

Each leaf node to root node black depth are equal.
*/
func BlackViolationValidate[E any](tree BinaryTree[E]) error {
	leaves := bfsLeaves(tree)
	if len(leaves) == 0 {
		return nil
	}

	blackDepth := blackDepthOf(leaves[0])
	for i := 1; i < len(leaves); i++ {
		if blackDepthOf(leaves[i]) != blackDepth {
			return ErrBlackViolation
		}
	}
	return nil
}
