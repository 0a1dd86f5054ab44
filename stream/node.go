package stream

import (
	"log"
	"os"
	"sync"

	"github.com/influxdata/flowgraph/internal/kexpvar"
	"github.com/influxdata/flowgraph/internal/timing"
	"github.com/influxdata/flowgraph/internal/wlog"
	"github.com/influxdata/flowgraph/uuid"
)

// GraphNode is the identity and traversal surface every concrete node
// implements regardless of the type of value it carries. It backs cycle
// detection and introspection, which must work across the differently
// typed segments of a graph.
type GraphNode interface {
	id() uuid.UUID
	Name() string
	// childNodes returns this node's children purely for graph traversal
	// (cycle detection, teardown); callers that want to emit into a typed
	// child use the typed ParentNode/ChildNode interfaces instead.
	childNodes() []GraphNode
	addParentNode(GraphNode)
	// collectedCount is the number of values this node has accepted via Emit.
	collectedCount() int64
	// emittedCount is the number of values this node has propagated to children.
	emittedCount() int64
}

// Receiver is anything that can accept a value of type T via Emit. It is
// the minimal capability needed to be wired as a child of a node that
// produces T.
type Receiver[T any] interface {
	Emit(v T) Token
}

// ChildNode is a Receiver[T] that also participates in graph traversal —
// the combination required to be linked as a child.
type ChildNode[T any] interface {
	Receiver[T]
	GraphNode
}

// ParentNode is a node capable of having ChildNode[T] children linked to
// it, where T is the type of value that node produces for its children.
type ParentNode[T any] interface {
	GraphNode
	addChildNode(ChildNode[T])
	removeChildNode(ChildNode[T])
	childrenOf() []ChildNode[T]
}

// Link attaches child as a downstream consumer of parent's output. It
// rejects the edge with a *GraphError if child can already reach parent,
// which would make the graph cyclic.
func Link[T any](parent ParentNode[T], child ChildNode[T]) error {
	if reachableFrom(child, parent) {
		return newCycleError(parent, child)
	}
	parent.addChildNode(child)
	child.addParentNode(parent)
	return nil
}

func reachableFrom(start, target GraphNode) bool {
	if start.id() == target.id() {
		return true
	}
	for _, c := range start.childNodes() {
		if reachableFrom(c, target) {
			return true
		}
	}
	return false
}

// base is embedded by every concrete operator; T is that operator's output
// type — the type its own children accept. base owns the child list,
// parent bookkeeping, identity, and per-node statistics. The operator's
// input-side Emit(In) is implemented by the concrete type, which calls
// propagate once it has computed the value(s) to send downstream.
type base[T any] struct {
	nodeID uuid.UUID
	name   string

	mu       sync.Mutex
	children []ChildNode[T]
	parents  []GraphNode

	logger *log.Logger

	collected kexpvar.Int

	timerMu sync.Mutex
	timer   timing.Timer
}

func newBase[T any](name string) base[T] {
	return base[T]{
		nodeID: uuid.New(),
		name:   name,
		logger: wlog.New(os.Stderr, "[stream] ", log.LstdFlags),
		timer:  timing.New(1.0, 32),
	}
}

func (b *base[T]) id() uuid.UUID           { return b.nodeID }
func (b *base[T]) Name() string            { return b.name }
func (b *base[T]) SetLogger(l *log.Logger) { b.logger = l }

func (b *base[T]) addChildNode(c ChildNode[T]) {
	b.mu.Lock()
	b.children = append(b.children, c)
	b.mu.Unlock()
}

// removeChildNode detaches c so it no longer receives propagated values.
// Used by sinks that own an external resource (a file) to stop delivery
// once closed.
func (b *base[T]) removeChildNode(c ChildNode[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, existing := range b.children {
		if existing.id() == c.id() {
			b.children = append(b.children[:i], b.children[i+1:]...)
			return
		}
	}
}

func (b *base[T]) addParentNode(p GraphNode) {
	b.mu.Lock()
	b.parents = append(b.parents, p)
	b.mu.Unlock()
}

func (b *base[T]) childrenOf() []ChildNode[T] {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]ChildNode[T], len(b.children))
	copy(out, b.children)
	return out
}

func (b *base[T]) childNodes() []GraphNode {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]GraphNode, len(b.children))
	for i, c := range b.children {
		out[i] = c
	}
	return out
}

func (b *base[T]) collectedCount() int64 { return b.collected.IntValue() }

// emittedCount is the sum of every child's collected count, matching the
// teacher's "a node's emitted count is the collected count of its output".
func (b *base[T]) emittedCount() (count int64) {
	for _, c := range b.childNodes() {
		count += c.collectedCount()
	}
	return
}

// propagate sends v to every child in insertion order and returns a Token
// that resolves once all of them have. It takes a snapshot of the child
// list so that Link-ing a new child concurrently with an in-flight Emit
// never races with this loop.
func (b *base[T]) propagate(v T) Token {
	b.timerMu.Lock()
	b.timer.Start()

	b.mu.Lock()
	children := make([]ChildNode[T], len(b.children))
	copy(children, b.children)
	b.mu.Unlock()

	var tok Token
	if len(children) == 0 {
		tok = Resolved()
	} else {
		tokens := make([]Token, len(children))
		for i, c := range children {
			tokens[i] = c.Emit(v)
		}
		tok = join(tokens)
	}

	b.timer.Stop()
	b.timerMu.Unlock()
	return tok
}

// avgExecNanos reports the moving average of time spent in propagate, in
// nanoseconds, satisfying statsOf for StatsFor.
func (b *base[T]) avgExecNanos() float64 {
	b.timerMu.Lock()
	defer b.timerMu.Unlock()
	avg, _ := b.timer.AverageTime()
	return float64(avg.Nanoseconds())
}

// markCollected records that this node accepted one more value via Emit.
func (b *base[T]) markCollected() { b.collected.Add(1) }
