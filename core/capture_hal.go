package core

// Tick is one unit of the capture timer's counting resolution.
// Targets configure their timers for 1µs per tick.
type Tick uint32

// TickHz is the tick rate the targets are expected to configure (1µs per tick).
const TickHz = 1000000

// TicksFromUS converts microseconds to ticks.
func TicksFromUS(us uint32) Tick {
	return Tick(us * (TickHz / 1000000))
}

// TicksFromMS converts milliseconds to ticks.
func TicksFromMS(ms uint32) Tick {
	return Tick(ms * (TickHz / 1000))
}

// CapturePolarity selects which signal edge latches a capture event.
type CapturePolarity uint8

const (
	CaptureRising CapturePolarity = iota
	CaptureFalling
)

// CaptureTimer is the abstract input-capture timer interface that core code
// uses. Platform-specific implementations handle actual hardware control.
//
// The counter is free-running and wraps to 0 after CounterMax. The hardware
// holds at most one outstanding capture event: if a second edge latches
// before ClearCaptureFlag, the first captured value is lost.
type CaptureTimer interface {
	// ResetCounter sets the free-running counter to 0
	ResetCounter()

	// SetCapturePolarity selects which edge latches a capture event.
	// Takes effect immediately.
	SetCapturePolarity(p CapturePolarity)

	// CapturePending reports whether a capture event has occurred since
	// the flag was last cleared
	CapturePending() bool

	// ClearCaptureFlag acknowledges the capture event. Must be called
	// after reading CapturedValue to avoid re-reading a stale flag.
	ClearCaptureFlag()

	// CapturedValue returns the counter value latched at the most recent
	// capture event
	CapturedValue() Tick

	// CurrentCount returns the live counter value, independent of capture
	// events
	CurrentCount() Tick

	// CounterMax returns the largest value the counter reaches before
	// wrapping to 0 (e.g. 0xFFFF for a 16-bit timer)
	CounterMax() Tick
}
