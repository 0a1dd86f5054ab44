package stream

import (
	"log"
	"time"
)

// ErrorHook receives errors that have no awaiting caller: timer-driven
// emissions from Counter and TimedWindow's flush, and Delay/Buffer's drain
// loops. The default implementation writes an "E! ..." line to stderr.
// Tests or hosts that want to observe these can replace it.
var ErrorHook func(node string, err error) = defaultErrorHook

func defaultErrorHook(node string, err error) {
	log.Printf("E! %s: %v", node, err)
}

// validateInterval reports whether interval is positive; if not, it
// reports a *TimingError through ErrorHook synchronously, at construction
// time, matching the "graph errors are raised synchronously at
// construction" policy for time-aware operators.
func validateInterval(node string, interval time.Duration) bool {
	if interval > 0 {
		return true
	}
	ErrorHook(node, newTimingError(node, "interval must be positive"))
	return false
}
