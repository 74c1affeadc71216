package core

import "testing"

func TestPulseTicks(t *testing.T) {
	cases := []struct {
		name            string
		start, end, max Tick
		want            Tick
	}{
		{"no elapsed time", 100, 100, 0xFFFF, 0},
		{"simple difference", 100, 588, 0xFFFF, 488},
		{"full range", 0, 0xFFFF, 0xFFFF, 0xFFFF},
		{"wraparound", 65500, 40, 0xFFFF, 76},
		{"wraparound from max", 0xFFFF, 0, 0xFFFF, 1},
		{"wraparound 32-bit counter", 0xFFFFFFF0, 16, 0xFFFFFFFF, 32},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PulseTicks(tc.start, tc.end, tc.max)
			if got != tc.want {
				t.Errorf("PulseTicks(%d, %d, %#x) = %d, want %d",
					tc.start, tc.end, tc.max, got, tc.want)
			}
		})
	}
}

func TestDistanceCM(t *testing.T) {
	cases := []struct {
		name  string
		width Tick
		want  uint32
	}{
		{"zero width", 0, 0},
		{"below resolution", 5, 0},
		{"488us echo", 488, 41},
		{"one meter", 1166, 99},
		{"max rated range", 23324, 2000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DistanceCM(tc.width)
			if got != tc.want {
				t.Errorf("DistanceCM(%d) = %d, want %d", tc.width, got, tc.want)
			}
		})
	}
}

func TestDistanceCMMonotonic(t *testing.T) {
	prev := uint32(0)
	for w := Tick(0); w <= 30000; w += 7 {
		d := DistanceCM(w)
		if d < prev {
			t.Fatalf("DistanceCM(%d) = %d, less than previous %d", w, d, prev)
		}
		prev = d
	}
}

func TestTickConversions(t *testing.T) {
	if got := TicksFromUS(100); got != 100 {
		t.Errorf("TicksFromUS(100) = %d, want 100", got)
	}
	if got := TicksFromMS(60); got != 60000 {
		t.Errorf("TicksFromMS(60) = %d, want 60000", got)
	}
}
