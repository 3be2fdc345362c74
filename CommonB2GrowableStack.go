package box2d

// LIFO stack backed by a slice that only ever grows, so pushes after warm-up
// do not allocate.
type B2GrowableStack[T any] struct {
	stack []T
}

func MakeB2GrowableStack[T any](capacity int) B2GrowableStack[T] {
	return B2GrowableStack[T]{
		stack: make([]T, 0, capacity),
	}
}

// Return the stack's length
func (s B2GrowableStack[T]) GetCount() int {
	return len(s.stack)
}

// Push a new element onto the stack
func (s *B2GrowableStack[T]) Push(value T) {
	s.stack = append(s.stack, value)
}

// Remove the top element from the stack and return its value.
// Popping an empty stack is a programming error.
func (s *B2GrowableStack[T]) Pop() T {
	B2Assert(len(s.stack) > 0)
	top := len(s.stack) - 1
	value := s.stack[top]
	s.stack = s.stack[:top]
	return value
}
