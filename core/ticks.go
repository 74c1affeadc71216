package core

// Speed-of-sound conversion ratio for the round trip, in integer form.
// With 1µs ticks, distance_cm = pulse_ticks * 343 / 4000. Intermediate
// products stay well inside uint32 for any 16-bit pulse width.
const (
	speedOfSoundNum = 343
	speedOfSoundDen = 4000
)

// PulseTicks returns the number of ticks elapsed from start to end on a
// free-running counter that wraps to 0 after max. Correct for at most one
// wraparound between the two captures; the counter range must comfortably
// exceed the longest measurable pulse.
func PulseTicks(start, end, max Tick) Tick {
	if end >= start {
		return end - start
	}
	return (max - start) + end + 1
}

// DistanceCM converts an echo pulse width to centimeters using integer-only
// arithmetic. Monotonically non-decreasing in width.
func DistanceCM(width Tick) uint32 {
	return uint32(width) * speedOfSoundNum / speedOfSoundDen
}
