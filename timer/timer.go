// Package timer implements the focus timer's two-phase countdown cycle.
// The engine is a pure state machine; scheduling (one Tick per real second)
// and rendering belong to the caller.
package timer

import "fmt"

// Phase names the two intervals of the cycle.
type Phase int

const (
	PhaseWork Phase = iota
	PhaseBreak
)

// Fixed nominal durations, in seconds.
const (
	WorkDuration  = 25 * 60
	BreakDuration = 5 * 60
)

// String returns the display name of the phase.
func (p Phase) String() string {
	if p == PhaseBreak {
		return "Break"
	}
	return "Work"
}

// Duration returns the phase's fixed duration in seconds.
func (p Phase) Duration() int {
	if p == PhaseBreak {
		return BreakDuration
	}
	return WorkDuration
}

// NotificationSink receives phase-completion notifications. Injecting it
// keeps cycle behavior observable in tests without a real notifier.
type NotificationSink interface {
	Notify(message string)
}

// Engine is the countdown state machine. Remaining never goes negative;
// the phase flips exactly when it reaches zero.
type Engine struct {
	phase     Phase
	remaining int
	active    bool
	sink      NotificationSink
}

// New creates an Engine in the Work phase, full duration, paused.
func New(sink NotificationSink) *Engine {
	return &Engine{
		phase:     PhaseWork,
		remaining: WorkDuration,
		sink:      sink,
	}
}

// Tick advances the countdown by one second. It is a no-op while paused.
// On reaching zero the sink is notified, the phase flips, and the countdown
// resets to the new phase's duration. The active flag is left unchanged, so
// a running timer cycles Work→Break→Work continuously.
func (e *Engine) Tick() {
	if !e.active {
		return
	}
	if e.remaining > 0 {
		e.remaining--
	}
	if e.remaining > 0 {
		return
	}

	if e.sink != nil {
		if e.phase == PhaseBreak {
			e.sink.Notify("Break time is over!")
		} else {
			e.sink.Notify("Focus session complete!")
		}
	}

	if e.phase == PhaseWork {
		e.phase = PhaseBreak
	} else {
		e.phase = PhaseWork
	}
	e.remaining = e.phase.Duration()
}

// Toggle flips the timer between running and paused.
func (e *Engine) Toggle() {
	e.active = !e.active
}

// Reset pauses the timer and restores the current phase's full duration.
// The phase itself is unchanged.
func (e *Engine) Reset() {
	e.active = false
	e.remaining = e.phase.Duration()
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Remaining returns the seconds left in the current phase.
func (e *Engine) Remaining() int { return e.remaining }

// Active reports whether the countdown is running.
func (e *Engine) Active() bool { return e.active }

// Progress returns the completed fraction of the current phase, in [0, 1].
func (e *Engine) Progress() float64 {
	total := e.phase.Duration()
	return float64(total-e.remaining) / float64(total)
}

// Clock formats the remaining time as MM:SS.
func (e *Engine) Clock() string {
	return fmt.Sprintf("%02d:%02d", e.remaining/60, e.remaining%60)
}
