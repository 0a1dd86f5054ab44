package stream

import (
	"time"

	"github.com/benbjohnson/clock"

	"github.com/influxdata/flowgraph/internal/queue"
)

// DelayNode reproduces each incoming value downstream after interval has
// elapsed, preserving arrival order even though every item's wait runs
// independently of the others: Emit only enqueues; a single drain goroutine
// pops items one at a time, in order, and is what actually sleeps and
// propagates.
type DelayNode[T any] struct {
	base[T]
	interval time.Duration
	clock    clock.Clock
	q        *queue.Queue[delayed[T]]
}

type delayed[T any] struct {
	at time.Time
	v  T
}

// Delay creates a node that propagates every value from src interval
// after it arrived.
func Delay[T any](interval time.Duration, src ParentNode[T], c clock.Clock) *DelayNode[T] {
	if c == nil {
		c = clock.New()
	}
	if !validateInterval("delay", interval) {
		interval = 0
	}
	n := &DelayNode[T]{
		base:     newBase[T]("delay"),
		interval: interval,
		clock:    c,
		q:        queue.New[delayed[T]](),
	}
	_ = Link[T](src, n)
	go n.drain()
	return n
}

func (n *DelayNode[T]) Emit(v T) Token {
	n.markCollected()
	n.q.Push(delayed[T]{at: n.clock.Now(), v: v})
	return Resolved()
}

func (n *DelayNode[T]) drain() {
	for {
		item, ok := n.q.Pop()
		if !ok {
			return
		}
		if wait := n.interval - n.clock.Now().Sub(item.at); wait > 0 {
			n.clock.Sleep(wait)
		}
		if err := n.propagate(item.v).Wait(); err != nil {
			ErrorHook(n.Name(), err)
		}
	}
}

// Close stops the drain goroutine once its queue has been emptied. After
// Close, any value still enqueued is delivered; no new value can arrive
// since src no longer holds an edge to this node once detached by its
// caller.
func (n *DelayNode[T]) Close() {
	n.q.Close()
}
