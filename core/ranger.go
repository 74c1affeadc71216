// Echo measurement engine for HC-SR04 style ultrasonic sensors.
// Drives one full trigger/capture cycle against an input-capture timer
// and converts the echo pulse width to a distance.
package core

import "errors"

var (
	// ErrNoResponse means no rising edge was seen within the rising-edge
	// timeout: sensor absent, miswired, or line noise.
	ErrNoResponse = errors.New("no echo response")

	// ErrOutOfRange means a rising edge was seen but no falling edge
	// followed within the echo timeout: object beyond the sensor's rated
	// range, or echo line stuck high.
	ErrOutOfRange = errors.New("echo out of range")
)

// RangerConfig holds the timing parameters of one measurement cycle.
type RangerConfig struct {
	// TriggerPulseUS is the trigger-line high time. The HC-SR04 needs at
	// least 10µs.
	TriggerPulseUS uint32

	// RisingTimeoutTicks bounds the wait for the echo rising edge,
	// measured from counter reset at cycle start.
	RisingTimeoutTicks Tick

	// EchoTimeoutTicks bounds the wait for the falling edge, measured
	// from the rising capture. Corresponds to the time of flight at the
	// sensor's maximum rated range.
	EchoTimeoutTicks Tick

	// MaxPollLoops is a safety net against a capture flag that never
	// asserts due to hardware fault. The counter-value bounds above are
	// authoritative; this only has to be large enough to never trip
	// first on a healthy timer.
	MaxPollLoops uint32
}

// DefaultRangerConfig returns the timing parameters for an HC-SR04 on a
// 1µs-tick timer.
func DefaultRangerConfig() RangerConfig {
	return RangerConfig{
		TriggerPulseUS:     100,
		RisingTimeoutTicks: TicksFromMS(60),
		EchoTimeoutTicks:   TicksFromMS(30),
		MaxPollLoops:       5000000,
	}
}

// Ranger measures distance by timing the round-trip ultrasonic echo pulse.
// It exclusively owns its timer and trigger line for the duration of each
// Measure call; cycles never overlap and no state persists across them
// beyond the timer hardware itself, which is fully re-armed every cycle.
//
// Ranger is not safe for concurrent use.
type Ranger struct {
	timer   CaptureTimer
	trigger TriggerDriver
	cfg     RangerConfig
}

// NewRanger creates a measurement engine on the given timer and trigger
// driver. The engine holds the drivers as instance state so multiple
// engines (e.g. in tests) cannot interfere through globals.
func NewRanger(timer CaptureTimer, trigger TriggerDriver, cfg RangerConfig) *Ranger {
	return &Ranger{
		timer:   timer,
		trigger: trigger,
		cfg:     cfg,
	}
}

// Measure runs one full measurement cycle to completion and returns the
// distance in whole centimeters, or ErrNoResponse / ErrOutOfRange.
// Blocking: every wait is a busy-poll bounded by the configured timeouts.
func (r *Ranger) Measure() (uint32, error) {
	// Establish a known time origin: timeout bounds are measured from
	// cycle start, not residue from a previous cycle.
	r.timer.ClearCaptureFlag()
	r.timer.ResetCounter()

	// Arm the rising edge before the echo line can legitimately rise.
	// The sensor's echo response always lags the trigger pulse by far
	// more than the pulse width itself.
	r.timer.SetCapturePolarity(CaptureRising)
	r.trigger.Fire(r.cfg.TriggerPulseUS)

	if !r.waitCapture(0, r.cfg.RisingTimeoutTicks) {
		return 0, ErrNoResponse
	}
	start := r.timer.CapturedValue()
	r.timer.ClearCaptureFlag()

	r.timer.SetCapturePolarity(CaptureFalling)
	if !r.waitCapture(start, r.cfg.EchoTimeoutTicks) {
		return 0, ErrOutOfRange
	}
	end := r.timer.CapturedValue()
	r.timer.ClearCaptureFlag()

	width := PulseTicks(start, end, r.timer.CounterMax())
	return DistanceCM(width), nil
}

// waitCapture busy-polls for a capture event. It gives up once the counter
// has advanced more than bound ticks past since (wraparound-aware), or after
// MaxPollLoops iterations if the timer itself is dead.
func (r *Ranger) waitCapture(since, bound Tick) bool {
	max := r.timer.CounterMax()
	for i := uint32(0); i < r.cfg.MaxPollLoops; i++ {
		if r.timer.CapturePending() {
			return true
		}
		if PulseTicks(since, r.timer.CurrentCount(), max) > bound {
			return false
		}
	}
	return false
}
