package stream

import (
	"sync"

	"github.com/benbjohnson/clock"
)

// BufferNode decouples a producer from a slower consumer by absorbing up
// to n in-flight values; Emit only blocks once the buffer is full. A
// single drain goroutine receives items one at a time and waits for each
// one's downstream Token to resolve before receiving the next, so
// propagation order always matches arrival order.
type BufferNode[T any] struct {
	base[T]
	n     int
	ch    chan T
	clock clock.Clock

	closeOnce sync.Once
}

// Buffer creates a node buffering up to n values from src ahead of a
// slower downstream; n <= 0 falls back to EngineConfig.DefaultBufferCapacity.
// c is accepted for symmetry with the other time-aware operators and for
// tests that want a mock clock in scope, even though Buffer itself has no
// timing component.
func Buffer[T any](n int, src ParentNode[T], c clock.Clock) *BufferNode[T] {
	if c == nil {
		c = clock.New()
	}
	if n <= 0 {
		n = EngineConfig.DefaultBufferCapacity
	}
	b := &BufferNode[T]{
		base:  newBase[T]("buffer"),
		n:     n,
		ch:    make(chan T, n),
		clock: c,
	}
	_ = Link[T](src, b)
	go b.drain()
	return b
}

func (b *BufferNode[T]) Emit(v T) Token {
	b.markCollected()
	b.ch <- v // blocks (suspends the caller) once n items are already queued
	return Resolved()
}

func (b *BufferNode[T]) drain() {
	for v := range b.ch {
		if err := b.propagate(v).Wait(); err != nil {
			ErrorHook(b.Name(), err)
		}
	}
}

// Close stops accepting new values and lets the drain goroutine finish
// whatever is already queued.
func (b *BufferNode[T]) Close() {
	b.closeOnce.Do(func() { close(b.ch) })
}
