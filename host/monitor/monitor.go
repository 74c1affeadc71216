// Package monitor consumes the rangefinder firmware's textual status
// output: one line per measurement cycle, either a distance in
// centimeters or an error indicator.
package monitor

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// Reading is one parsed status line.
type Reading struct {
	// DistanceCM is the reported distance for distance lines.
	DistanceCM uint32

	// Err carries the firmware's error text for error lines, empty for
	// distance lines.
	Err string
}

// ParseLine parses a firmware status line of the form
// "distance: 41 cm" or "error: no echo response".
// Lines that are neither (boot noise, debug output) are rejected.
func ParseLine(line string) (Reading, bool) {
	line = strings.TrimSpace(line)

	if rest, ok := strings.CutPrefix(line, "error: "); ok {
		return Reading{Err: rest}, true
	}

	rest, ok := strings.CutPrefix(line, "distance: ")
	if !ok {
		return Reading{}, false
	}
	rest, ok = strings.CutSuffix(rest, " cm")
	if !ok {
		return Reading{}, false
	}
	d, err := strconv.ParseUint(rest, 10, 32)
	if err != nil {
		return Reading{}, false
	}
	return Reading{DistanceCM: uint32(d)}, true
}

// Stats aggregates the readings seen so far.
type Stats struct {
	Samples uint64 // successful distance readings
	Errors  uint64 // error lines
	LastCM  uint32
	MinCM   uint32
	MaxCM   uint32
}

// Monitor aggregates parsed status lines. Safe for one reader goroutine
// plus a console goroutine querying stats.
type Monitor struct {
	mu    sync.Mutex
	stats Stats
	log   io.Writer
}

// New returns an empty Monitor.
func New() *Monitor {
	return &Monitor{}
}

// Observe folds one reading into the statistics.
func (m *Monitor) Observe(r Reading) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r.Err != "" {
		m.stats.Errors++
		return
	}
	if m.stats.Samples == 0 || r.DistanceCM < m.stats.MinCM {
		m.stats.MinCM = r.DistanceCM
	}
	if r.DistanceCM > m.stats.MaxCM {
		m.stats.MaxCM = r.DistanceCM
	}
	m.stats.LastCM = r.DistanceCM
	m.stats.Samples++
}

// Stats returns a snapshot of the aggregated statistics.
func (m *Monitor) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

// Reset clears the aggregated statistics.
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats = Stats{}
}

// SetLog mirrors every recognized status line to w (nil disables).
func (m *Monitor) SetLog(w io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log = w
}

// Run reads status lines from r until EOF, echoing recognized lines to
// out and folding them into the statistics.
func (m *Monitor) Run(r io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		reading, ok := ParseLine(line)
		if !ok {
			continue
		}
		m.Observe(reading)

		fmt.Fprintln(out, strings.TrimSpace(line))
		m.mu.Lock()
		if m.log != nil {
			fmt.Fprintln(m.log, strings.TrimSpace(line))
		}
		m.mu.Unlock()
	}
	return scanner.Err()
}

// String formats a stats snapshot for the console.
func (s Stats) String() string {
	if s.Samples == 0 {
		return fmt.Sprintf("no samples yet (%d errors)", s.Errors)
	}
	return fmt.Sprintf("samples=%d errors=%d last=%dcm min=%dcm max=%dcm",
		s.Samples, s.Errors, s.LastCM, s.MinCM, s.MaxCM)
}
