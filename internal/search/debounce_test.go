package search

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects dispatches so tests can assert on the exact sequence
// of fired queries.
type recorder struct {
	mu      sync.Mutex
	queries []string
	seqs    []uint64
}

func (r *recorder) dispatch(seq uint64, query string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, query)
	r.seqs = append(r.seqs, seq)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.queries...)
}

func TestDebouncer_BurstCoalescesToSingleDispatch(t *testing.T) {
	rec := &recorder{}
	deb := NewDebouncer(60*time.Millisecond, rec.dispatch)
	defer deb.Stop()

	// Three quick keystrokes, then a fourth arriving just before the
	// window from the third would have expired. Only the final text may
	// dispatch, once.
	deb.Update("a")
	time.Sleep(10 * time.Millisecond)
	deb.Update("ab")
	time.Sleep(10 * time.Millisecond)
	deb.Update("abc")
	time.Sleep(40 * time.Millisecond)
	deb.Update("abcd")

	// Let the quiet interval elapse.
	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, []string{"abcd"}, rec.snapshot())
}

func TestDebouncer_SeparatedUpdatesEachDispatch(t *testing.T) {
	rec := &recorder{}
	deb := NewDebouncer(20*time.Millisecond, rec.dispatch)
	defer deb.Stop()

	deb.Update("first")
	time.Sleep(80 * time.Millisecond)
	deb.Update("second")
	time.Sleep(80 * time.Millisecond)

	assert.Equal(t, []string{"first", "second"}, rec.snapshot())
}

func TestDebouncer_FlushBypassesDelay(t *testing.T) {
	rec := &recorder{}
	deb := NewDebouncer(time.Hour, rec.dispatch)
	defer deb.Stop()

	deb.Update("pending")
	deb.Flush("submitted")

	assert.Equal(t, []string{"submitted"}, rec.snapshot())

	// The cancelled scheduled dispatch must never fire.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, []string{"submitted"}, rec.snapshot())
}

func TestDebouncer_StaleSequenceDetected(t *testing.T) {
	rec := &recorder{}
	deb := NewDebouncer(time.Hour, rec.dispatch)
	defer deb.Stop()

	deb.Flush("one")
	deb.Flush("two")

	rec.mu.Lock()
	require.Len(t, rec.seqs, 2)
	first, second := rec.seqs[0], rec.seqs[1]
	rec.mu.Unlock()

	assert.False(t, deb.IsCurrent(first), "superseded dispatch must read as stale")
	assert.True(t, deb.IsCurrent(second))
}

func TestDebouncer_SequenceNumbersIncrease(t *testing.T) {
	rec := &recorder{}
	deb := NewDebouncer(time.Hour, rec.dispatch)
	defer deb.Stop()

	deb.Flush("a")
	deb.Flush("b")
	deb.Flush("c")

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.seqs, 3)
	assert.Less(t, rec.seqs[0], rec.seqs[1])
	assert.Less(t, rec.seqs[1], rec.seqs[2])
}

func TestDebouncer_FlushAfterWindowExpiryKeepsOrdering(t *testing.T) {
	// A timer that has already expired can no longer be stopped; its
	// callback may run after the Flush. The flushed text must still end up
	// with the newest sequence, and only that sequence may read as current.
	for i := 0; i < 50; i++ {
		rec := &recorder{}
		deb := NewDebouncer(50*time.Microsecond, rec.dispatch)

		deb.Update("old")
		time.Sleep(200 * time.Microsecond)
		deb.Flush("new")

		time.Sleep(5 * time.Millisecond)

		rec.mu.Lock()
		require.NotEmpty(t, rec.seqs)
		latest := 0
		for j := range rec.seqs {
			if rec.seqs[j] > rec.seqs[latest] {
				latest = j
			}
		}
		latestSeq, latestQuery := rec.seqs[latest], rec.queries[latest]
		rec.mu.Unlock()

		assert.Equal(t, "new", latestQuery,
			"iteration %d: superseded text took the newest sequence", i)
		assert.True(t, deb.IsCurrent(latestSeq))

		rec.mu.Lock()
		for j, seq := range rec.seqs {
			if rec.queries[j] == "old" {
				assert.False(t, deb.IsCurrent(seq),
					"iteration %d: stale dispatch reads as current", i)
			}
		}
		rec.mu.Unlock()

		deb.Stop()
	}
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	rec := &recorder{}
	deb := NewDebouncer(30*time.Millisecond, rec.dispatch)

	deb.Update("doomed")
	deb.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, rec.snapshot())

	// Inputs after Stop are ignored.
	deb.Update("late")
	deb.Flush("late")
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestNewDebouncer_DefaultQuiet(t *testing.T) {
	deb := NewDebouncer(0, func(uint64, string) {})
	defer deb.Stop()

	assert.Equal(t, DefaultQuiet, deb.quiet)
}
