package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinkRejectsCycle(t *testing.T) {
	src := Stream[int]()
	m := Map[int, int](func(v int) int { return v }, src)

	err := Link[int](m, src)
	require.Error(t, err)
	var gerr *GraphError
	require.ErrorAs(t, err, &gerr)
}

func TestLinkRejectsSelfLoop(t *testing.T) {
	src := Stream[int]()
	err := Link[int](src, src)
	require.Error(t, err)
}

func TestLinkAllowsFanOut(t *testing.T) {
	src := Stream[int]()
	a := Map[int, int](func(v int) int { return v + 1 }, src)
	b := Map[int, int](func(v int) int { return v + 2 }, src)

	_, seqA := SinkToSlice[int](a)
	_, seqB := SinkToSlice[int](b)

	require.NoError(t, src.Emit(1).Wait())
	require.Equal(t, []int{2}, seqA.Values())
	require.Equal(t, []int{3}, seqB.Values())
}

func TestCollectedAndEmittedCounts(t *testing.T) {
	src := Stream[int]()
	m := Map[int, int](func(v int) int { return v * 2 }, src)
	Sink[int](m, func(v int) Token { return nil })

	require.NoError(t, src.Emit(1).Wait())
	require.NoError(t, src.Emit(2).Wait())

	require.EqualValues(t, 2, src.collectedCount())
	require.EqualValues(t, 2, src.emittedCount())
	require.EqualValues(t, 2, m.collectedCount())
}

func TestTeardownStopsBackgroundNodes(t *testing.T) {
	src := Stream[int]()
	d := Delay[int](0, src, nil)
	Sink[int](d, func(v int) Token { return nil })

	require.NoError(t, src.Emit(1).Wait())
	Teardown(src)

	// After Teardown the delay node's drain goroutine has exited, so a
	// further Emit is only queued, never observed downstream; it must not
	// panic.
	require.NoError(t, src.Emit(2).Wait())
}
