package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delay = 300 * time.Millisecond

func waitFor(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		t.Fatal("debounced call did not run")
		return ""
	}
}

func TestDebouncer_RunsAfterDelay(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := New(clock, delay)
	ran := make(chan string, 1)

	d.Trigger(func() { ran <- "a" })
	assert.True(t, d.Pending())

	clock.Advance(delay - time.Millisecond)
	select {
	case <-ran:
		t.Fatal("ran before the delay elapsed")
	default:
	}

	clock.Advance(time.Millisecond)
	assert.Equal(t, "a", waitFor(t, ran))
	assert.Eventually(t, func() bool { return !d.Pending() }, time.Second, 5*time.Millisecond)
}

func TestDebouncer_OnlyLastOfBurstRuns(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := New(clock, delay)
	ran := make(chan string, 3)
	var calls atomic.Int32

	for _, q := range []string{"b", "bu", "bud"} {
		d.Trigger(func() {
			calls.Add(1)
			ran <- q
		})
		clock.Advance(100 * time.Millisecond)
	}

	clock.Advance(delay)
	assert.Equal(t, "bud", waitFor(t, ran))

	// give any stray timer a chance to fire
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncer_Cancel(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := New(clock, delay)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	require.True(t, d.Cancel())
	assert.False(t, d.Cancel())

	clock.Advance(time.Second)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}
