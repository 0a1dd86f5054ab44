package stream

import "github.com/influxdata/flowgraph/uuid"

// Closer is implemented by nodes that own a background goroutine or timer
// that must be stopped explicitly: Counter, Delay, TimedWindow, Buffer.
// Stateless and purely synchronous nodes (Map, Filter, Scan, Partition,
// SlidingWindow, Sink) need no teardown and do not implement it.
type Closer interface {
	Close()
}

// Teardown walks every node reachable from start and calls Close on each
// one that owns background state, so that tearing down a graph leaves no
// registered timers or goroutines behind. It is safe to call more than
// once; each node's own Close is idempotent or cheap to call twice.
func Teardown(start GraphNode) {
	seen := make(map[uuid.UUID]bool)
	var walk func(GraphNode)
	walk = func(n GraphNode) {
		if seen[n.id()] {
			return
		}
		seen[n.id()] = true
		if c, ok := n.(Closer); ok {
			c.Close()
		}
		for _, child := range n.childNodes() {
			walk(child)
		}
	}
	walk(start)
}
