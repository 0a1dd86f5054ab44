package stream

import (
	"fmt"

	"github.com/pkg/errors"
)

// GraphError indicates a problem with graph construction: a cycle, or an
// attempt to mutate a node's children while an emission is in flight.
type GraphError struct {
	Op  string
	Msg string
}

func (e *GraphError) Error() string {
	return fmt.Sprintf("graph error during %s: %s", e.Op, e.Msg)
}

func newCycleError(parent, child GraphNode) *GraphError {
	return &GraphError{
		Op:  "link",
		Msg: fmt.Sprintf("linking %s -> %s would create a cycle", parent.Name(), child.Name()),
	}
}

// OperatorError wraps an error raised by a user-supplied function (map,
// filter, scan's combiner, or a sink callback) with the name of the node
// that raised it and a stack trace captured at the point of failure.
type OperatorError struct {
	Node string
	Err  error
}

func (e *OperatorError) Error() string {
	return fmt.Sprintf("%s: %s", e.Node, e.Err)
}

func (e *OperatorError) Unwrap() error { return e.Err }

func newOperatorError(node string, err error) *OperatorError {
	return &OperatorError{Node: node, Err: errors.WithStack(err)}
}

// TimingError indicates a non-positive interval was supplied where a
// positive one is required.
type TimingError struct {
	Node string
	Msg  string
}

func (e *TimingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Node, e.Msg)
}

func newTimingError(node, msg string) *TimingError {
	return &TimingError{Node: node, Msg: msg}
}
