package core

import "testing"

// scriptedMeasurer replays a fixed sequence of measurement outcomes.
type scriptedMeasurer struct {
	distances []uint32
	errs      []error
	calls     int
}

func (m *scriptedMeasurer) Measure() (uint32, error) {
	i := m.calls
	m.calls++
	return m.distances[i], m.errs[i]
}

func TestReporterLines(t *testing.T) {
	measurer := &scriptedMeasurer{
		distances: []uint32{41, 0, 400},
		errs:      []error{nil, ErrNoResponse, nil},
	}

	var lines []string
	var delays []uint32
	rp := NewReporter(measurer,
		func(s string) { lines = append(lines, s) },
		func(us uint32) { delays = append(delays, us) },
		DefaultReportIntervalUS)

	rp.Run(3)

	want := []string{
		"distance: 41 cm",
		"error: no echo response",
		"distance: 400 cm",
	}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("Line %d: expected %q, got %q", i, w, lines[i])
		}
	}

	if len(delays) != 3 {
		t.Fatalf("Expected a delay per cycle, got %d", len(delays))
	}
	for _, d := range delays {
		if d != DefaultReportIntervalUS {
			t.Errorf("Expected %dus interval, got %dus", uint32(DefaultReportIntervalUS), d)
		}
	}
}

func TestReporterContinuesAfterError(t *testing.T) {
	// A sustained fault just keeps reporting; no backoff, no abort.
	measurer := &scriptedMeasurer{
		distances: []uint32{0, 0, 0},
		errs:      []error{ErrOutOfRange, ErrOutOfRange, ErrOutOfRange},
	}

	var lines []string
	rp := NewReporter(measurer,
		func(s string) { lines = append(lines, s) },
		func(uint32) {},
		DefaultReportIntervalUS)

	rp.Run(3)

	if measurer.calls != 3 {
		t.Errorf("Expected 3 measurement attempts, got %d", measurer.calls)
	}
	for i, line := range lines {
		if line != "error: echo out of range" {
			t.Errorf("Line %d: expected out-of-range error line, got %q", i, line)
		}
	}
}
