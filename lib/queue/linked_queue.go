package queue

// Elements are enqueued at the tail and dequeued from the head.
//
//	head                     tail
//	[e0] --> [e1] --> ... --> [en]
type linkedQueue[E any] struct {
	head  *linkedNode[E]
	tail  *linkedNode[E]
	count int64
}

func (q *linkedQueue[E]) Len() int64 {
	return q.count
}

func (q *linkedQueue[E]) IsEmpty() bool {
	return q.head == nil
}

func (q *linkedQueue[E]) Enqueue(e E) {
	n := &linkedNode[E]{value: e}
	if q.tail == nil {
		q.head, q.tail = n, n
	} else {
		q.tail.next = n
		q.tail = n
	}
	q.count++
}

func (q *linkedQueue[E]) Dequeue() (e E, err error) {
	if q.head == nil {
		return e, ErrEmpty
	}
	n := q.head
	if q.head = n.next; q.head == nil {
		q.tail = nil
	}
	q.count--
	e = n.value
	n.release()
	return e, nil
}

func (q *linkedQueue[E]) Peek() (e E, err error) {
	if q.head == nil {
		return e, ErrEmpty
	}
	return q.head.value, nil
}

func (q *linkedQueue[E]) Clear() {
	for aux := q.head; aux != nil; {
		next := aux.next
		aux.release()
		aux = next
	}
	q.head, q.tail = nil, nil
	q.count = 0
}

func NewQueue[E any]() Queue[E] {
	return &linkedQueue[E]{}
}
