package watch

import (
	"sync"
	"time"
)

// DefaultDebounce is the default quiet period before a change is handled.
const DefaultDebounce = 150 * time.Millisecond

// Debouncer coalesces bursts of triggers per key. Only the last function
// triggered for a key during a burst runs, once the key has been quiet for
// the window. Functions for different keys may run concurrently.
type Debouncer struct {
	window time.Duration

	mu      sync.Mutex
	pending map[string]*pendingCall
	seq     uint64
	stopped bool
}

type pendingCall struct {
	timer *time.Timer
	seq   uint64
}

// NewDebouncer returns a Debouncer with the given window.
// A window of zero or less runs every trigger immediately.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{
		window:  window,
		pending: make(map[string]*pendingCall),
	}
}

// Window returns the quiet period of the debouncer.
func (d *Debouncer) Window() time.Duration {
	return d.window
}

// Trigger schedules fn for key, replacing any call still pending for key.
func (d *Debouncer) Trigger(key string, fn func()) {
	if d.window <= 0 {
		d.mu.Lock()
		stopped := d.stopped
		d.mu.Unlock()
		if !stopped {
			fn()
		}
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if p, ok := d.pending[key]; ok {
		p.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.pending[key] = &pendingCall{
		seq: seq,
		timer: time.AfterFunc(d.window, func() {
			d.mu.Lock()
			p, ok := d.pending[key]
			// A newer trigger may have replaced this one after the timer fired.
			if !ok || p.seq != seq || d.stopped {
				d.mu.Unlock()
				return
			}
			delete(d.pending, key)
			d.mu.Unlock()
			fn()
		}),
	}
}

// Pending returns the number of keys with a scheduled call.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Stop cancels all pending calls. Later triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	for key, p := range d.pending {
		p.timer.Stop()
		delete(d.pending, key)
	}
}
