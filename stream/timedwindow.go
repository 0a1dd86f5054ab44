package stream

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// TimedWindowNode buffers incoming values and flushes them downstream as a
// batch on a fixed clock tick. While a flush has not yet finished
// downstream, Emit blocks on that flush's "done" channel until it has —
// the node's backpressure state.
type TimedWindowNode[T any] struct {
	base[[]T]
	interval time.Duration
	clock    clock.Clock
	ticker   *clock.Ticker

	mu   sync.Mutex
	buf  []T
	done chan struct{}

	closeOnce sync.Once
	stop      chan struct{}
}

// TimedWindow creates a node that collects values from src and propagates
// them as a batch every interval.
func TimedWindow[T any](interval time.Duration, src ParentNode[T], c clock.Clock) *TimedWindowNode[T] {
	if c == nil {
		c = clock.New()
	}
	if !validateInterval("timed_window", interval) {
		interval = time.Nanosecond
	}
	n := &TimedWindowNode[T]{
		base:     newBase[[]T]("timed_window"),
		interval: interval,
		clock:    c,
		ticker:   c.Ticker(interval),
		done:     closedChan(),
		stop:     make(chan struct{}),
	}
	_ = Link[T](src, n)
	go n.run()
	return n
}

func closedChan() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

// Interval reports the configured flush period.
func (n *TimedWindowNode[T]) Interval() time.Duration { return n.interval }

func (n *TimedWindowNode[T]) Emit(v T) Token {
	n.markCollected()

	n.mu.Lock()
	done := n.done
	n.mu.Unlock()
	<-done // block while the previous flush hasn't finished downstream

	n.mu.Lock()
	n.buf = append(n.buf, v)
	n.mu.Unlock()
	return Resolved()
}

func (n *TimedWindowNode[T]) run() {
	for {
		select {
		case <-n.stop:
			return
		case <-n.ticker.C:
			n.flush()
		}
	}
}

func (n *TimedWindowNode[T]) flush() {
	n.mu.Lock()
	batch := n.buf
	n.buf = nil
	flushDone := make(chan struct{})
	n.done = flushDone
	n.mu.Unlock()

	if err := n.propagate(batch).Wait(); err != nil {
		ErrorHook(n.Name(), err)
	}
	close(flushDone)
}

// Close stops the node's ticker and background goroutine.
func (n *TimedWindowNode[T]) Close() {
	n.closeOnce.Do(func() {
		n.ticker.Stop()
		close(n.stop)
	})
}
