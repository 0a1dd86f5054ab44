package stream

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// CounterNode is a source that emits a monotonically increasing int on
// every clock tick, useful for driving tests and demos without an
// external producer.
type CounterNode struct {
	base[int]
	clock  clock.Clock
	ticker *clock.Ticker
	stop   chan struct{}

	mu    sync.Mutex
	count int

	closeOnce sync.Once
}

// Counter creates a source emitting 0, 1, 2, ... once per interval.
func Counter(interval time.Duration, c clock.Clock) *CounterNode {
	if c == nil {
		c = clock.New()
	}
	if !validateInterval("counter", interval) {
		interval = time.Nanosecond
	}
	n := &CounterNode{
		base:   newBase[int]("counter"),
		clock:  c,
		ticker: c.Ticker(interval),
		stop:   make(chan struct{}),
	}
	go n.run()
	return n
}

func (n *CounterNode) run() {
	for {
		select {
		case <-n.stop:
			return
		case <-n.ticker.C:
			n.mu.Lock()
			v := n.count
			n.count++
			n.mu.Unlock()

			n.markCollected()
			if err := n.propagate(v).Wait(); err != nil {
				ErrorHook(n.Name(), err)
			}
		}
	}
}

// Close stops the counter's ticker and background goroutine.
func (n *CounterNode) Close() {
	n.closeOnce.Do(func() {
		n.ticker.Stop()
		close(n.stop)
	})
}
