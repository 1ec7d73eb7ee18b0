package queue

import "errors"

var ErrEmpty = errors.New("[queue] there is no element")

// Stack is a LIFO container. It is not thread safe.
type Stack[E any] interface {
	Len() int64
	IsEmpty() bool
	Push(e E)
	// Pop removes and returns the top element or ErrEmpty.
	Pop() (E, error)
	// Peek returns the top element without removing it or ErrEmpty.
	Peek() (E, error)
	Clear()
}

// Queue is a FIFO container. It is not thread safe.
type Queue[E any] interface {
	Len() int64
	IsEmpty() bool
	Enqueue(e E)
	// Dequeue removes and returns the head element or ErrEmpty.
	Dequeue() (E, error)
	// Peek returns the head element without removing it or ErrEmpty.
	Peek() (E, error)
	Clear()
}
