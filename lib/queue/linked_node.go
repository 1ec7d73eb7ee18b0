package queue

// Singly linked node shared by the stack and the queue.
// The value should be placed at the end of the struct to avoid padding.
type linkedNode[E any] struct {
	next  *linkedNode[E]
	value E
}

func (n *linkedNode[E]) release() {
	var zero E
	n.next = nil
	n.value = zero
}
