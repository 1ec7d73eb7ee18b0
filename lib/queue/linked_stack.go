package queue

type linkedStack[E any] struct {
	top   *linkedNode[E]
	count int64
}

func (s *linkedStack[E]) Len() int64 {
	return s.count
}

func (s *linkedStack[E]) IsEmpty() bool {
	return s.top == nil
}

func (s *linkedStack[E]) Push(e E) {
	s.top = &linkedNode[E]{
		next:  s.top,
		value: e,
	}
	s.count++
}

func (s *linkedStack[E]) Pop() (e E, err error) {
	if s.top == nil {
		return e, ErrEmpty
	}
	n := s.top
	s.top = n.next
	s.count--
	e = n.value
	n.release()
	return e, nil
}

func (s *linkedStack[E]) Peek() (e E, err error) {
	if s.top == nil {
		return e, ErrEmpty
	}
	return s.top.value, nil
}

func (s *linkedStack[E]) Clear() {
	for aux := s.top; aux != nil; {
		next := aux.next
		aux.release()
		aux = next
	}
	s.top = nil
	s.count = 0
}

func NewStack[E any]() Stack[E] {
	return &linkedStack[E]{}
}
