package stream

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSlidingWindowEmitsOnceFull(t *testing.T) {
	src := Stream[int]()
	w := SlidingWindow[int](3, src)
	_, seq := SinkToSlice[[]int](w)

	require.NoError(t, src.Emit(1).Wait())
	require.NoError(t, src.Emit(2).Wait())
	require.Empty(t, seq.Values())

	require.NoError(t, src.Emit(3).Wait())
	require.Equal(t, [][]int{{1, 2, 3}}, seq.Values())
}

func TestSlidingWindowSlidesByOne(t *testing.T) {
	src := Stream[int]()
	w := SlidingWindow[int](2, src)
	_, seq := SinkToSlice[[]int](w)

	for i := 1; i <= 4; i++ {
		require.NoError(t, src.Emit(i).Wait())
	}
	want := [][]int{{1, 2}, {2, 3}, {3, 4}}
	if diff := cmp.Diff(want, seq.Values()); diff != "" {
		t.Errorf("sliding window output mismatch (-want +got):\n%s", diff)
	}
}
