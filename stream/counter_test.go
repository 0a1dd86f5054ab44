package stream

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
)

func TestCounterEmitsOnEachTick(t *testing.T) {
	clk := clock.NewMock()
	c := Counter(time.Second, clk)
	_, seq := SinkToSlice[int](c)

	clk.Add(time.Second)
	clk.Add(time.Second)
	clk.Add(time.Second)

	require.Eventually(t, func() bool { return len(seq.Values()) == 3 }, time.Second, time.Millisecond)
	require.Equal(t, []int{0, 1, 2}, seq.Values())
	c.Close()
}

func TestCounterCloseStopsTicking(t *testing.T) {
	clk := clock.NewMock()
	c := Counter(time.Second, clk)
	_, seq := SinkToSlice[int](c)

	clk.Add(time.Second)
	require.Eventually(t, func() bool { return len(seq.Values()) == 1 }, time.Second, time.Millisecond)

	c.Close()
	c.Close() // idempotent

	clk.Add(time.Second)
	time.Sleep(10 * time.Millisecond)
	require.Equal(t, []int{0}, seq.Values())
}

func TestCounterReportsDownstreamFailureViaErrorHook(t *testing.T) {
	orig := ErrorHook
	defer func() { ErrorHook = orig }()

	var got error
	ErrorHook = func(node string, err error) { got = err }

	clk := clock.NewMock()
	c := Counter(time.Second, clk)
	defer c.Close()
	Sink[int](c, func(int) Token { return Errored(assertionErr) })

	clk.Add(time.Second)
	require.Eventually(t, func() bool { return got != nil }, time.Second, time.Millisecond)
}
