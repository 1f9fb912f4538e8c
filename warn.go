package instantsearch

import (
	"log"
	"sync"
)

// Warnf is the advisory channel for non-fatal configuration problems
// (deprecated options, recoverable bad input). It never aborts widget
// construction. Replace it to route warnings elsewhere, or set it to a
// no-op to silence them.
var Warnf = func(format string, args ...any) {
	log.Printf("instantsearch: "+format, args...)
}

var (
	warnedMu sync.Mutex
	warned   = make(map[string]struct{})
)

// WarnOnce emits a warning at most once per key for the process lifetime.
// Used for deprecation notices that would otherwise repeat on every render.
func WarnOnce(key, format string, args ...any) {
	warnedMu.Lock()
	_, seen := warned[key]
	if !seen {
		warned[key] = struct{}{}
	}
	warnedMu.Unlock()

	if !seen {
		Warnf(format, args...)
	}
}
