package core

// Measurer is the one operation the reporting loop needs from the
// measurement engine. *Ranger satisfies it.
type Measurer interface {
	Measure() (uint32, error)
}

// StatusWriter emits one status line. Targets bind it to whatever text
// sink they have (UART, USB CDC, println).
type StatusWriter func(string)

// Reporter repeatedly runs a measurement, writes one line per cycle, and
// sleeps a fixed interval. Errors are reported and the loop proceeds to
// the next cycle unconditionally; there is no retry or backoff.
type Reporter struct {
	ranger     Measurer
	write      StatusWriter
	delay      DelayFunc
	intervalUS uint32
}

// DefaultReportIntervalUS is the inter-sample interval (100ms).
const DefaultReportIntervalUS = 100000

// NewReporter creates a reporting loop over the given measurer.
func NewReporter(ranger Measurer, write StatusWriter, delay DelayFunc, intervalUS uint32) *Reporter {
	return &Reporter{
		ranger:     ranger,
		write:      write,
		delay:      delay,
		intervalUS: intervalUS,
	}
}

// RunOnce performs a single cycle: measure, report, wait the interval.
func (rp *Reporter) RunOnce() {
	d, err := rp.ranger.Measure()
	if err != nil {
		rp.write("error: " + err.Error())
	} else {
		rp.write("distance: " + utoa(d) + " cm")
	}
	rp.delay(rp.intervalUS)
}

// Run performs n cycles. Useful for tests and bounded diagnostics.
func (rp *Reporter) Run(n int) {
	for i := 0; i < n; i++ {
		rp.RunOnce()
	}
}

// RunForever is the firmware main loop: measure and report until reset.
func (rp *Reporter) RunForever() {
	for {
		rp.RunOnce()
	}
}
