package stream

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// SinkNode is a terminal node: on Emit it invokes a user callback and uses
// whatever token that callback returns (or a resolved token, if it returns
// nil) as its own completion token, so a sink participates fully in
// backpressure when its callback is asynchronous.
type SinkNode[T any] struct {
	base[T]
	f func(T) Token
}

// Sink creates a terminal node invoking f for every value emitted by src.
// f may return nil to indicate it completed synchronously.
func Sink[T any](src ParentNode[T], f func(T) Token) *SinkNode[T] {
	n := &SinkNode[T]{
		base: newBase[T]("sink"),
		f:    f,
	}
	_ = Link[T](src, n)
	return n
}

func (n *SinkNode[T]) Emit(v T) (tok Token) {
	n.markCollected()
	defer func() {
		if r := recover(); r != nil {
			tok = Errored(newOperatorError(n.Name(), fmt.Errorf("panic: %v", r)))
		}
	}()
	got := n.f(v)
	if got == nil {
		return Resolved()
	}
	return got
}

// Slice is an ordered, concurrency-safe sequence a sink appends to. It
// backs SinkToSlice.
type Slice[T any] struct {
	mu     sync.Mutex
	values []T
}

func (s *Slice[T]) append(v T) {
	s.mu.Lock()
	s.values = append(s.values, v)
	s.mu.Unlock()
}

// Values returns a snapshot of everything appended so far.
func (s *Slice[T]) Values() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.values))
	copy(out, s.values)
	return out
}

// SinkToSlice is a convenience wrapper creating an internal ordered
// sequence and a Sink appending every emitted value to it.
func SinkToSlice[T any](src ParentNode[T]) (*SinkNode[T], *Slice[T]) {
	seq := &Slice[T]{}
	n := Sink[T](src, func(v T) Token {
		seq.append(v)
		return nil
	})
	return n, seq
}

// SinkToFile opens path for writing and returns a Sink writing each
// emitted value's textual representation followed by a newline, plus a
// close function that is the scope-exit operation: it flushes and closes
// the file and detaches the sink from src so no further Emit reaches it.
//
// If path cannot be opened, the open error is captured: every Emit on the
// returned sink resolves with that error instead of writing, and close
// returns it.
func SinkToFile[T any](path string, src ParentNode[T], format func(T) string) (*SinkNode[T], func() error) {
	f, openErr := os.Create(path)
	if format == nil {
		format = func(v T) string { return fmt.Sprint(v) }
	}

	var w *bufio.Writer
	if f != nil {
		w = bufio.NewWriter(f)
	}

	var mu sync.Mutex
	n := Sink[T](src, func(v T) Token {
		if openErr != nil {
			return Errored(errors.Wrapf(openErr, "sink_to_file: open %q", path))
		}
		mu.Lock()
		_, werr := w.WriteString(format(v) + "\n")
		if werr == nil && !EngineConfig.SinkToFileBuffered {
			werr = w.Flush()
		}
		mu.Unlock()
		if werr != nil {
			return Errored(errors.Wrap(werr, "sink_to_file: write"))
		}
		return nil
	})

	closeFn := func() error {
		n.detach(src)
		if openErr != nil {
			return openErr
		}
		mu.Lock()
		flushErr := w.Flush()
		mu.Unlock()
		closeErr := f.Close()
		if flushErr != nil {
			return flushErr
		}
		return closeErr
	}
	return n, closeFn
}

// detach removes n from src's child list so no further value reaches it.
func (n *SinkNode[T]) detach(src ParentNode[T]) {
	src.removeChildNode(n)
}
