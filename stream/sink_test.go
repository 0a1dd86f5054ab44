package stream

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSinkInvokesCallbackPerValue(t *testing.T) {
	src := Stream[int]()
	var got []int
	Sink[int](src, func(v int) Token {
		got = append(got, v)
		return nil
	})

	require.NoError(t, src.Emit(1).Wait())
	require.NoError(t, src.Emit(2).Wait())
	require.Equal(t, []int{1, 2}, got)
}

func TestSinkPropagatesCallbackError(t *testing.T) {
	src := Stream[int]()
	boom := Errored(assertionErr)
	Sink[int](src, func(int) Token { return boom })

	err := src.Emit(1).Wait()
	require.Error(t, err)
}

var assertionErr = &OperatorError{Node: "test", Err: os.ErrClosed}

func TestSinkRecoversCallbackPanicAsOperatorError(t *testing.T) {
	src := Stream[int]()
	Sink[int](src, func(int) Token { panic("boom") })

	err := src.Emit(1).Wait()
	require.Error(t, err)
	var opErr *OperatorError
	require.ErrorAs(t, err, &opErr)
}

func TestSinkToSliceCollectsInOrder(t *testing.T) {
	src := Stream[string]()
	_, seq := SinkToSlice[string](src)

	require.NoError(t, src.Emit("a").Wait())
	require.NoError(t, src.Emit("b").Wait())
	require.Equal(t, []string{"a", "b"}, seq.Values())
}

func TestSinkToFileWritesFormattedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	src := Stream[int]()
	_, closeFn := SinkToFile[int](path, src, func(v int) string { return "v=" + strconv.Itoa(v) })

	require.NoError(t, src.Emit(1).Wait())
	require.NoError(t, src.Emit(2).Wait())
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "v=1\nv=2\n", string(data))
}

func TestSinkToFileOpenErrorSurfacesOnEmit(t *testing.T) {
	src := Stream[int]()
	_, closeFn := SinkToFile[int](filepath.Join(t.TempDir(), "missing-dir", "out.txt"), src, nil)

	err := src.Emit(1).Wait()
	require.Error(t, err)
	require.Error(t, closeFn())
}
