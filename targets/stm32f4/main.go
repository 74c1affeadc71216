//go:build stm32f4

package main

import (
	"device/stm32"

	"sonar/core"
)

// HC-SR04 rangefinder on an STM32F4: PA0 = TRIG (GPIO output), PA1 = ECHO
// (TIM2_CH2 input capture). Status lines go to the default serial output.

const (
	rccGPIOAEN = 1 << 0 // AHB1ENR: GPIOA clock enable
	rccTIM2EN  = 1 << 0 // APB1ENR: TIM2 clock enable
)

func main() {
	initClocks()
	initPins()

	timer := NewTIM2CaptureTimer()

	// Let the timer and sensor settle before the first ping.
	timerDelayUS(100000)

	trigger := NewGPIOTrigger(timerDelayUS)
	ranger := core.NewRanger(timer, trigger, core.DefaultRangerConfig())

	reporter := core.NewReporter(ranger,
		func(s string) { println(s) },
		timerDelayUS,
		core.DefaultReportIntervalUS)
	reporter.RunForever()
}

func initClocks() {
	stm32.RCC.AHB1ENR.SetBits(rccGPIOAEN)
	stm32.RCC.APB1ENR.SetBits(rccTIM2EN)
}

// initPins configures PA0 as a push-pull output and PA1 as alternate
// function AF1 (TIM2_CH2).
func initPins() {
	// PA0: general purpose output (MODER = 01), push-pull
	stm32.GPIOA.MODER.ClearBits(0x3 << 0)
	stm32.GPIOA.MODER.SetBits(0x1 << 0)
	stm32.GPIOA.OTYPER.ClearBits(1 << 0)

	// PA1: alternate function (MODER = 10), AF1
	stm32.GPIOA.MODER.ClearBits(0x3 << 2)
	stm32.GPIOA.MODER.SetBits(0x2 << 2)
	stm32.GPIOA.AFRL.ClearBits(0xF << 4)
	stm32.GPIOA.AFRL.SetBits(0x1 << 4)
}
