package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamEmitWithNoChildrenResolves(t *testing.T) {
	src := Stream[string]()
	require.NoError(t, src.Emit("hello").Wait())
	require.EqualValues(t, 1, src.collectedCount())
}

func TestStreamEmitPropagatesToChild(t *testing.T) {
	src := Stream[int]()
	_, seq := SinkToSlice[int](src)

	require.NoError(t, src.Emit(1).Wait())
	require.NoError(t, src.Emit(2).Wait())
	require.Equal(t, []int{1, 2}, seq.Values())
}
