package store

import (
	"sync"
	"time"
)

// AutoSaveDelay is the quiet period after the last command before the
// silent auto-save fires.
const AutoSaveDelay = 1500 * time.Millisecond

// Debouncer is a single-slot coalescing timer: each Trigger cancels any
// pending run and restarts the window, so only the last state within the
// window is persisted.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer returns a debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the quiet period, replacing any pending run.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending run (component teardown, logout).
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
