// Package media enforces the single-playback rule: at most one animated
// or audible preview runs at a time across both panes.
package media

import "sync"

// Playback is anything the arbiter can stop: a gif animation, an audio
// stream, a video preview.
type Playback interface {
	Stop()
}

// Arbiter tracks the active playback. It is injected into whoever starts
// playback rather than accessed as process-global state, so tests can run
// arbiters side by side.
type Arbiter struct {
	mu      sync.Mutex
	current Playback

	debugPrint func(format string, args ...interface{})
}

// NewArbiter creates an arbiter. A nil debugPrint disables debug output.
func NewArbiter(debugPrint func(format string, args ...interface{})) *Arbiter {
	if debugPrint == nil {
		debugPrint = func(string, ...interface{}) {}
	}
	return &Arbiter{debugPrint: debugPrint}
}

// Register makes p the active playback, synchronously stopping whatever
// was active before. By the time Register returns, p is the only running
// playback. Registering the already-active playback is a no-op.
func (a *Arbiter) Register(p Playback) {
	a.mu.Lock()
	prev := a.current
	if prev == p {
		a.mu.Unlock()
		return
	}
	a.current = p
	a.mu.Unlock()
	if prev != nil {
		a.debugPrint("media: stopping previous playback")
		prev.Stop()
	}
}

// StopCurrent stops and clears the active playback, if any. Used when the
// hosting pane navigates away or shuts down.
func (a *Arbiter) StopCurrent() {
	a.mu.Lock()
	prev := a.current
	a.current = nil
	a.mu.Unlock()
	if prev != nil {
		prev.Stop()
	}
}

// Active reports whether a playback is currently registered.
func (a *Arbiter) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current != nil
}
