package stream

import (
	"github.com/influxdata/flowgraph/config"
	"github.com/influxdata/flowgraph/internal/wlog"
)

// EngineConfig holds the defaults new nodes fall back to when a
// constructor is given a zero-value override (e.g. Buffer's capacity).
// SetConfig replaces it, normally once at program startup from a loaded
// config.Config.
var EngineConfig = config.Default()

func init() {
	applyLogLevel(EngineConfig.DefaultLogLevel)
}

// SetConfig installs c as the engine-wide defaults used by subsequently
// constructed nodes, and applies c.DefaultLogLevel to every node's logger
// (wlog's level filter is global, not per-writer, so this takes effect
// immediately for nodes already built too).
func SetConfig(c config.Config) {
	EngineConfig = c
	applyLogLevel(c.DefaultLogLevel)
}

func applyLogLevel(level string) {
	if err := wlog.SetLevel(level); err != nil {
		ErrorHook("config", err)
	}
}

// NewEngineDefaults loads config from path and installs it via SetConfig,
// the wiring a host program runs once at startup before constructing any
// nodes.
func NewEngineDefaults(path string) (config.Config, error) {
	c, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	SetConfig(c)
	return c, nil
}
