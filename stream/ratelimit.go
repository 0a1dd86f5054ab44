package stream

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// RateLimitNode enforces a minimum gap between successive propagations: if
// a value arrives before interval has elapsed since the previous one was
// sent downstream, the node sleeps out the remainder before propagating.
// A single mutex held across sleep, propagate, and timestamp update is the
// node's entire serialization mechanism: a concurrent Emit simply blocks on
// the mutex until the one ahead of it has fully resolved downstream.
type RateLimitNode[T any] struct {
	base[T]
	interval time.Duration
	clock    clock.Clock

	mu   sync.Mutex
	last time.Time
}

// RateLimit creates a node that never propagates more often than once per
// interval, as measured against clock c.
func RateLimit[T any](interval time.Duration, src ParentNode[T], c clock.Clock) *RateLimitNode[T] {
	if c == nil {
		c = clock.New()
	}
	if !validateInterval("rate_limit", interval) {
		interval = 0
	}
	n := &RateLimitNode[T]{
		base:     newBase[T]("rate_limit"),
		interval: interval,
		clock:    c,
	}
	_ = Link[T](src, n)
	return n
}

func (n *RateLimitNode[T]) Emit(v T) Token {
	n.markCollected()

	n.mu.Lock()
	defer n.mu.Unlock()

	now := n.clock.Now()
	if !n.last.IsZero() {
		if wait := n.interval - now.Sub(n.last); wait > 0 {
			n.clock.Sleep(wait)
		}
	}

	err := n.propagate(v).Wait()
	n.last = n.clock.Now()
	if err != nil {
		return Errored(err)
	}
	return Resolved()
}
