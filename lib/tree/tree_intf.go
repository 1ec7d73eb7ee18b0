package tree

import (
	"errors"
	"iter"
)

var (
	ErrInvalidArgument      = errors.New("[xtree] invalid argument")
	ErrNotFound             = errors.New("[xtree] node not found")
	ErrUnsupportedOperation = errors.New("[xtree] unsupported operation")
	ErrRedViolation         = errors.New("[xtree] rbtree red violation")
	ErrBlackViolation       = errors.New("[xtree] rbtree black violation")
)

type Color uint8

const (
	// ColorNone is carried by nodes of the uncolored trees.
	ColorNone Color = iota
	Red
	Black
)

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Black:
		return "Black"
	default:
	}
	return "None"
}

type Direction int8

const (
	Left Direction = -1 + iota
	Root
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
	}
	return "Root"
}

// Node is the read-only view of a tree node. It exposes navigation only.
type Node[E any] interface {
	HasParent() bool
	HasLeft() bool
	HasRight() bool
	// Parent, Left and Right return ErrNotFound if the node is absent.
	Parent() (Node[E], error)
	Left() (Node[E], error)
	Right() (Node[E], error)
	Value() E
	Color() Color
	// Height is the longest edge count from this node down to a leaf.
	Height() int
	// Depth is the edge count from the root down to this node.
	Depth() int
}

// BinaryTree is the contract shared by every tree variant.
// None of the trees are thread safe, callers have to serialize the
// access by themselves (e.g. one mutex guarding the whole tree).
type BinaryTree[E any] interface {
	Len() int64
	IsEmpty() bool
	Clear()
	// Root returns ErrNotFound if the tree is empty.
	Root() (Node[E], error)
	// Height of an empty tree is -1.
	Height() int
	Depth(n Node[E]) int
	Search(e E) (Node[E], bool)
	Contains(e E) bool
	// Equal reports whether both trees have the same shape, and every
	// pair of nodes at the same position holds equal elements and colors.
	Equal(other BinaryTree[E]) bool
	// The visitor must not mutate the tree structure.
	BFS(visit func(n Node[E]))
	PreOrder(visit func(n Node[E]))
	InOrder(visit func(n Node[E]))
	PostOrder(visit func(n Node[E]))
	String() string
}

// Rotator is the capability of trees that allow their callers to rotate.
type Rotator[E any] interface {
	// RotateLeft pivots n with its right child. No-op if the child is absent.
	RotateLeft(n Node[E]) error
	// RotateRight pivots n with its left child. No-op if the child is absent.
	RotateRight(n Node[E]) error
}

type OrderedTree[E any] interface {
	BinaryTree[E]
	// Insert returns ErrInvalidArgument for a nil element.
	Insert(e E) error
	// Delete removes the first element found equal to e. No-op if absent.
	Delete(e E)
	Min() (Node[E], error)
	Max() (Node[E], error)
	// All yields the elements in order.
	All() iter.Seq[E]
	// Backward yields the elements in reverse order.
	Backward() iter.Seq[E]
}

type BSTree[E any] interface {
	OrderedTree[E]
	Rotator[E]
	// LastInserted is only valid immediately after Insert.
	LastInserted() (Node[E], error)
	Foreach(action func(idx int64, e E) bool)
}

type RBTree[E any] interface {
	OrderedTree[E]
	// ColorOf reports Black for a nil node, it is a nil leaf.
	ColorOf(n Node[E]) Color
	// BlackHeight is the number of black nodes on any root to leaf path.
	BlackHeight() int
	Foreach(action func(idx int64, color Color, e E) bool)
}

type CompleteTree[E any] interface {
	BinaryTree[E]
	Insert(e E) error
	Delete(e E)
	// All yields the elements in BFS order.
	All() iter.Seq[E]
}
