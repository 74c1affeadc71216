//go:build stm32f4

package main

import (
	"device/stm32"

	"sonar/core"
)

// PA0 drives the sensor's TRIG input.
const trigPinBit = 0

// GPIOTrigger implements core.TriggerDriver on PA0.
type GPIOTrigger struct {
	delay core.DelayFunc
}

// NewGPIOTrigger returns a trigger driver using the given microsecond
// delay. PA0 must already be configured as a push-pull output.
func NewGPIOTrigger(delay core.DelayFunc) *GPIOTrigger {
	return &GPIOTrigger{delay: delay}
}

// Fire drives PA0 high for at least minHighMicros, then low. Blocking.
func (g *GPIOTrigger) Fire(minHighMicros uint32) {
	stm32.GPIOA.BSRR.Set(1 << trigPinBit)
	g.delay(minHighMicros)
	stm32.GPIOA.BSRR.Set(1 << (trigPinBit + 16))
}
