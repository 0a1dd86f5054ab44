package stream

import "fmt"

// MapNode applies f to every incoming value and propagates the result.
type MapNode[T, R any] struct {
	base[R]
	f func(T) R
}

// Map creates a node that transforms each value from src with f.
func Map[T, R any](f func(T) R, src ParentNode[T]) *MapNode[T, R] {
	n := &MapNode[T, R]{
		base: newBase[R]("map"),
		f:    f,
	}
	_ = Link[T](src, n)
	return n
}

func (n *MapNode[T, R]) Emit(v T) (tok Token) {
	n.markCollected()
	defer func() {
		if r := recover(); r != nil {
			tok = Errored(newOperatorError(n.Name(), fmt.Errorf("panic: %v", r)))
		}
	}()
	return n.propagate(n.f(v))
}
