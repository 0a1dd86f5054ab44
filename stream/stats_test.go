package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatsForTracksCollectedAndEmitted(t *testing.T) {
	src := Stream[int]()
	m := Map[int, int](func(v int) int { return v }, src)
	Sink[int](m, func(int) Token { return nil })

	require.NoError(t, src.Emit(1).Wait())
	require.NoError(t, src.Emit(2).Wait())
	require.NoError(t, src.Emit(3).Wait())

	s := StatsFor(src)
	require.Equal(t, "stream", s.Name)
	require.EqualValues(t, 3, s.Collected)
	require.EqualValues(t, 3, s.Emitted)
	require.GreaterOrEqual(t, s.AvgExec, float64(0))
}
