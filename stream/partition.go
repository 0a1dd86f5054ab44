package stream

import "sync"

// PartitionNode buffers incoming values and propagates them as a batch of
// exactly n once n have arrived, then starts a fresh empty buffer. Any
// partial content left when the node is torn down is never flushed.
type PartitionNode[T any] struct {
	base[[]T]
	n int

	mu  sync.Mutex
	buf []T
}

// Partition creates a node that groups every n values from src into one
// slice (the "tuple") and propagates it once full.
func Partition[T any](n int, src ParentNode[T]) *PartitionNode[T] {
	p := &PartitionNode[T]{
		base: newBase[[]T]("partition"),
		n:    n,
	}
	_ = Link[T](src, p)
	return p
}

func (p *PartitionNode[T]) Emit(v T) Token {
	p.markCollected()
	p.mu.Lock()
	p.buf = append(p.buf, v)
	var full []T
	if len(p.buf) == p.n {
		full = p.buf
		p.buf = nil
	}
	p.mu.Unlock()

	if full == nil {
		return Resolved()
	}
	return p.propagate(full)
}
