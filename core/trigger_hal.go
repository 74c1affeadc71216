package core

// TriggerDriver is the abstract trigger-line interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type TriggerDriver interface {
	// Fire drives the trigger line high for at least minHighMicros
	// microseconds, then low. Blocking, no cancellation.
	Fire(minHighMicros uint32)
}

// DelayFunc waits for at least the given number of microseconds. Targets
// provide an implementation validated once per platform, so the core carries
// no clock-speed-dependent timing constants.
type DelayFunc func(micros uint32)
