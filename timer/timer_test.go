package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	messages []string
}

func (r *recordingSink) Notify(message string) {
	r.messages = append(r.messages, message)
}

func TestInitialState(t *testing.T) {
	e := New(nil)

	assert.Equal(t, PhaseWork, e.Phase())
	assert.Equal(t, WorkDuration, e.Remaining())
	assert.False(t, e.Active())
	assert.Equal(t, "25:00", e.Clock())
}

func TestTickWhilePausedIsNoOp(t *testing.T) {
	e := New(nil)

	e.Tick()
	assert.Equal(t, WorkDuration, e.Remaining())
}

func TestFullCycle(t *testing.T) {
	sink := &recordingSink{}
	e := New(sink)
	e.Toggle()
	require.True(t, e.Active())

	// 1500 ticks: Work runs out, phase flips to Break at full duration.
	for i := 0; i < WorkDuration; i++ {
		e.Tick()
	}
	assert.Equal(t, PhaseBreak, e.Phase())
	assert.Equal(t, BreakDuration, e.Remaining())
	assert.True(t, e.Active(), "cycle boundary must not pause the timer")
	require.Len(t, sink.messages, 1)
	assert.Equal(t, "Focus session complete!", sink.messages[0])

	// 300 more ticks: back to Work at full duration.
	for i := 0; i < BreakDuration; i++ {
		e.Tick()
	}
	assert.Equal(t, PhaseWork, e.Phase())
	assert.Equal(t, WorkDuration, e.Remaining())
	require.Len(t, sink.messages, 2)
	assert.Equal(t, "Break time is over!", sink.messages[1])
}

func TestCycleIsIdempotentOnPhase(t *testing.T) {
	e := New(nil)
	e.Toggle()

	// A full 1800-tick cycle returns the engine to its starting phase/duration.
	for i := 0; i < WorkDuration+BreakDuration; i++ {
		e.Tick()
	}
	assert.Equal(t, PhaseWork, e.Phase())
	assert.Equal(t, WorkDuration, e.Remaining())
}

func TestRemainingNeverNegative(t *testing.T) {
	e := New(nil)
	e.Toggle()

	for i := 0; i < WorkDuration*3; i++ {
		e.Tick()
		if e.Remaining() < 0 {
			t.Fatalf("remaining went negative after %d ticks", i+1)
		}
	}
}

func TestReset(t *testing.T) {
	e := New(nil)
	e.Toggle()
	for i := 0; i < 100; i++ {
		e.Tick()
	}

	e.Reset()
	assert.False(t, e.Active())
	assert.Equal(t, PhaseWork, e.Phase())
	assert.Equal(t, WorkDuration, e.Remaining())

	// Reset during a break restores the break duration, not the work one.
	e2 := New(nil)
	e2.Toggle()
	for i := 0; i < WorkDuration; i++ {
		e2.Tick()
	}
	require.Equal(t, PhaseBreak, e2.Phase())
	for i := 0; i < 42; i++ {
		e2.Tick()
	}
	e2.Reset()
	assert.Equal(t, PhaseBreak, e2.Phase())
	assert.Equal(t, BreakDuration, e2.Remaining())
}

func TestProgress(t *testing.T) {
	e := New(nil)
	assert.Equal(t, 0.0, e.Progress())

	e.Toggle()
	for i := 0; i < WorkDuration/2; i++ {
		e.Tick()
	}
	assert.InDelta(t, 0.5, e.Progress(), 0.001)
}
