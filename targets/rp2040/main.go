//go:build rp2040

package main

import (
	"machine"
	"time"

	"sonar/core"
)

// HC-SR04 rangefinder on a Raspberry Pi Pico: GPIO16 = TRIG (PIO pulse),
// GPIO17 = ECHO (software edge capture). Status lines go to USB CDC.
const (
	trigPin = machine.GPIO16
	echoPin = machine.GPIO17
)

func main() {
	delay := func(us uint32) {
		time.Sleep(time.Duration(us) * time.Microsecond)
	}

	timer := NewEdgeCaptureTimer(echoPin)

	trigger, err := NewPIOTrigger(0, 0, trigPin, delay)
	if err != nil {
		for {
			println("trigger init failed:", err.Error())
			time.Sleep(1 * time.Second)
		}
	}

	// Let USB enumerate and the sensor settle before the first ping.
	time.Sleep(100 * time.Millisecond)

	ranger := core.NewRanger(timer, trigger, core.DefaultRangerConfig())
	reporter := core.NewReporter(ranger,
		func(s string) { println(s) },
		delay,
		core.DefaultReportIntervalUS)
	reporter.RunForever()
}
