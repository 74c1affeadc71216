//go:build rp2040

package main

import (
	"machine"
	"time"

	"sonar/core"
)

// EdgeCaptureTimer implements core.CaptureTimer in software for targets
// without a hardware input-capture channel on a free GPIO. The counter is
// the microsecond timebase truncated to 32 bits, and edges are detected by
// comparing the echo pin level against the level seen on the previous poll.
//
// The poll loop in the measurement engine is the sampling clock, so the
// capture resolution is bounded by the loop period rather than by the
// timebase. Good to a few microseconds on a 125MHz RP2040, which is well
// inside the sensor's own accuracy.
type EdgeCaptureTimer struct {
	pin   machine.Pin
	epoch time.Time

	polarity  core.CapturePolarity
	lastLevel bool
	pending   bool
	captured  core.Tick
}

// NewEdgeCaptureTimer configures pin as an input and returns a software
// capture timer sampling it.
func NewEdgeCaptureTimer(pin machine.Pin) *EdgeCaptureTimer {
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	return &EdgeCaptureTimer{
		pin:   pin,
		epoch: time.Now(),
	}
}

func (t *EdgeCaptureTimer) ResetCounter() {
	t.epoch = time.Now()
}

// SetCapturePolarity arms the edge detector. The current pin level is
// re-sampled so a line already sitting at the target level does not count
// as an edge.
func (t *EdgeCaptureTimer) SetCapturePolarity(p core.CapturePolarity) {
	t.polarity = p
	t.lastLevel = t.pin.Get()
}

func (t *EdgeCaptureTimer) CapturePending() bool {
	level := t.pin.Get()
	if !t.pending {
		switch t.polarity {
		case core.CaptureRising:
			if level && !t.lastLevel {
				t.pending = true
				t.captured = t.CurrentCount()
			}
		case core.CaptureFalling:
			if !level && t.lastLevel {
				t.pending = true
				t.captured = t.CurrentCount()
			}
		}
	}
	t.lastLevel = level
	return t.pending
}

func (t *EdgeCaptureTimer) ClearCaptureFlag() {
	t.pending = false
}

func (t *EdgeCaptureTimer) CapturedValue() core.Tick {
	return t.captured
}

func (t *EdgeCaptureTimer) CurrentCount() core.Tick {
	return core.Tick(time.Since(t.epoch).Microseconds())
}

// CounterMax is the full 32-bit range: the uint32 truncation in
// CurrentCount wraps exactly there.
func (t *EdgeCaptureTimer) CounterMax() core.Tick {
	return 0xFFFFFFFF
}
