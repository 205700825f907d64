// Package search sequences rapid query input so that only the latest user
// intent produces a visible result: bursts of keystrokes coalesce into a
// single dispatch after a quiet interval, and completions for superseded
// dispatches are discarded rather than merged.
package search

import (
	"sync"
	"time"
)

// DefaultQuiet is the quiet interval applied when none is configured.
const DefaultQuiet = 300 * time.Millisecond

// Dispatch receives the query text together with the sequence number
// assigned when the input was recorded. The dispatch typically starts an
// asynchronous request; before applying its result the caller must check
// IsCurrent with the same sequence number.
type Dispatch func(seq uint64, query string)

// Debouncer schedules at most one dispatch per quiet period. Update
// reschedules, Flush bypasses the delay. Every input takes the next
// sequence number at the moment it is recorded, so a timer that already
// expired but has not run yet carries a sequence older than any later
// input and its callback aborts instead of dispatching. In-flight requests
// are not cancelled, only invalidated through their sequence number.
type Debouncer struct {
	quiet    time.Duration
	dispatch Dispatch

	mu      sync.Mutex
	timer   *time.Timer
	seq     uint64
	stopped bool
}

// NewDebouncer creates a coordinator with the given quiet interval.
// A non-positive interval falls back to DefaultQuiet.
func NewDebouncer(quiet time.Duration, dispatch Dispatch) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Debouncer{quiet: quiet, dispatch: dispatch}
}

// Update records new query text: any pending scheduled dispatch is
// superseded and a new one is scheduled after the quiet interval.
func (d *Debouncer) Update(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.quiet, func() {
		d.fire(seq, query)
	})
}

// Flush dispatches the query immediately, superseding any pending
// scheduled dispatch. Used for explicit submits.
func (d *Debouncer) Flush(query string) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
	seq := d.seq
	d.mu.Unlock()

	d.dispatch(seq, query)
}

// fire runs a scheduled dispatch outside the lock, unless a newer input
// has taken the sequence since the timer was armed. Stop() on an expired
// timer is a no-op, so this check is what actually retires it.
func (d *Debouncer) fire(seq uint64, query string) {
	d.mu.Lock()
	if d.stopped || seq != d.seq {
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()

	d.dispatch(seq, query)
}

// IsCurrent reports whether seq still belongs to the latest recorded
// input. Results carrying a stale sequence must be dropped by the caller.
func (d *Debouncer) IsCurrent(seq uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return seq == d.seq
}

// Stop cancels any pending dispatch and prevents further ones.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
