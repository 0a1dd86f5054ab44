package stream

import (
	"fmt"
	"sync"
)

// ScanNode maintains a running accumulator, updating it with binop on every
// incoming value and propagating the new accumulator value. The accumulator
// is updated before propagation and is never rolled back on a downstream
// failure (spec's pinned answer to the scan-rollback open question).
type ScanNode[T, R any] struct {
	base[R]
	binop func(R, T) R

	mu  sync.Mutex
	acc R
}

// Scan creates a node whose output is binop(acc, v) for each incoming v,
// starting from acc = start. The first propagated value is
// binop(start, v0), never start itself.
func Scan[T, R any](binop func(R, T) R, src ParentNode[T], start R) *ScanNode[T, R] {
	n := &ScanNode[T, R]{
		base:  newBase[R]("scan"),
		binop: binop,
		acc:   start,
	}
	_ = Link[T](src, n)
	return n
}

func (n *ScanNode[T, R]) Emit(v T) (tok Token) {
	n.markCollected()
	n.mu.Lock()
	defer func() {
		if r := recover(); r != nil {
			n.mu.Unlock()
			tok = Errored(newOperatorError(n.Name(), fmt.Errorf("panic: %v", r)))
		}
	}()
	n.acc = n.binop(n.acc, v)
	next := n.acc
	n.mu.Unlock()
	return n.propagate(next)
}
