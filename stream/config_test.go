package stream

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/influxdata/flowgraph/config"
	"github.com/stretchr/testify/require"
)

func TestBufferFallsBackToEngineConfigCapacity(t *testing.T) {
	orig := EngineConfig
	defer func() { EngineConfig = orig }()
	SetConfig(config.Config{DefaultBufferCapacity: 2, DefaultLogLevel: "INFO"})

	src := Stream[int]()
	buf := Buffer[int](0, src, nil)
	require.Equal(t, 2, cap(buf.ch))
}

func TestNewEngineDefaultsLoadsAndInstalls(t *testing.T) {
	orig := EngineConfig
	defer func() { EngineConfig = orig }()

	path := filepath.Join(t.TempDir(), "flowgraph.toml")
	require.NoError(t, os.WriteFile(path, []byte("default-buffer-capacity = 7\n"), 0o644))

	c, err := NewEngineDefaults(path)
	require.NoError(t, err)
	require.Equal(t, 7, c.DefaultBufferCapacity)
	require.Equal(t, 7, EngineConfig.DefaultBufferCapacity)
}
