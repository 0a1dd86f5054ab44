package stream

import "fmt"

// FilterNode propagates only the incoming values for which predicate
// returns true; everything else is dropped with a resolved token.
type FilterNode[T any] struct {
	base[T]
	predicate func(T) bool
}

// Filter creates a node that forwards values from src matching predicate.
func Filter[T any](predicate func(T) bool, src ParentNode[T]) *FilterNode[T] {
	n := &FilterNode[T]{
		base:      newBase[T]("filter"),
		predicate: predicate,
	}
	_ = Link[T](src, n)
	return n
}

func (n *FilterNode[T]) Emit(v T) (tok Token) {
	n.markCollected()
	defer func() {
		if r := recover(); r != nil {
			tok = Errored(newOperatorError(n.Name(), fmt.Errorf("panic: %v", r)))
		}
	}()
	if !n.predicate(v) {
		return Resolved()
	}
	return n.propagate(v)
}
