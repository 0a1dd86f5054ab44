// Package config loads engine-wide defaults for the stream package from an
// optional TOML file, the way kapacitor's server loads its service config.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config holds defaults that apply across every node constructed by a
// program unless a constructor's own options override them.
type Config struct {
	// DefaultBufferCapacity is used by Buffer when no explicit capacity override is given.
	DefaultBufferCapacity int `toml:"default-buffer-capacity"`
	// DefaultLogLevel is one of DEBUG, INFO, WARN, ERROR.
	DefaultLogLevel string `toml:"default-log-level"`
	// SinkToFileBuffered controls whether SinkToFile buffers writes or flushes on every value.
	SinkToFileBuffered bool `toml:"sink-to-file-buffered"`
}

// Default returns the built-in defaults used when no config file is supplied.
func Default() Config {
	return Config{
		DefaultBufferCapacity: 64,
		DefaultLogLevel:       "INFO",
		SinkToFileBuffered:    true,
	}
}

// Load reads a TOML file at path, applying its values on top of Default.
func Load(path string) (Config, error) {
	c := Default()
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Config{}, errors.Wrapf(err, "failed to load config %q", path)
	}
	return c, nil
}
