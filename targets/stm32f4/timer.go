//go:build stm32f4

package main

import (
	"device/stm32"

	"sonar/core"
)

// TIM2 channel 2 input capture on PA1.
//
// The timer clock on APB1 runs at 84MHz (SYSCLK 168MHz / 4 * 2), so a
// prescaler of 83 yields the 1µs tick the core expects. The auto-reload
// register stays at its full 16-bit range so the counter only wraps every
// ~65ms, comfortably beyond the longest valid echo.
const (
	tim2Prescaler  = 83
	tim2AutoReload = 0xFFFF

	timCR1CEN       = 1 << 0 // CR1: counter enable
	timSRCC2IF      = 1 << 2 // SR: channel 2 capture flag
	timCCERCC2E     = 1 << 4 // CCER: channel 2 capture enable
	timCCERCC2P     = 1 << 5 // CCER: channel 2 polarity (0=rising, 1=falling)
	timCCMR1CC2STI2 = 1 << 8 // CCMR1: IC2 mapped to TI2
)

// TIM2CaptureTimer implements core.CaptureTimer on the TIM2 peripheral.
type TIM2CaptureTimer struct{}

// NewTIM2CaptureTimer configures TIM2 for channel 2 input capture and
// starts the counter. The RCC clock for TIM2 must already be enabled.
func NewTIM2CaptureTimer() *TIM2CaptureTimer {
	stm32.TIM2.PSC.Set(tim2Prescaler)
	stm32.TIM2.ARR.Set(tim2AutoReload)

	stm32.TIM2.CCMR1.ClearBits(0xFF << 8)
	stm32.TIM2.CCMR1.SetBits(timCCMR1CC2STI2)

	stm32.TIM2.CCER.ClearBits(timCCERCC2P)
	stm32.TIM2.CCER.SetBits(timCCERCC2E)

	stm32.TIM2.CR1.SetBits(timCR1CEN)

	return &TIM2CaptureTimer{}
}

func (t *TIM2CaptureTimer) ResetCounter() {
	stm32.TIM2.CNT.Set(0)
}

func (t *TIM2CaptureTimer) SetCapturePolarity(p core.CapturePolarity) {
	if p == core.CaptureFalling {
		stm32.TIM2.CCER.SetBits(timCCERCC2P)
	} else {
		stm32.TIM2.CCER.ClearBits(timCCERCC2P)
	}
}

func (t *TIM2CaptureTimer) CapturePending() bool {
	return stm32.TIM2.SR.HasBits(timSRCC2IF)
}

func (t *TIM2CaptureTimer) ClearCaptureFlag() {
	stm32.TIM2.SR.ClearBits(timSRCC2IF)
}

func (t *TIM2CaptureTimer) CapturedValue() core.Tick {
	return core.Tick(stm32.TIM2.CCR2.Get())
}

func (t *TIM2CaptureTimer) CurrentCount() core.Tick {
	return core.Tick(stm32.TIM2.CNT.Get())
}

func (t *TIM2CaptureTimer) CounterMax() core.Tick {
	return tim2AutoReload
}

// timerDelayUS busy-waits on the running TIM2 counter. Delays longer than
// the counter range are taken in chunks so at most one wraparound occurs
// per chunk.
func timerDelayUS(us uint32) {
	for us > 0 {
		chunk := us
		if chunk > 10000 {
			chunk = 10000
		}
		start := core.Tick(stm32.TIM2.CNT.Get())
		for core.PulseTicks(start, core.Tick(stm32.TIM2.CNT.Get()), tim2AutoReload) < core.Tick(chunk) {
		}
		us -= chunk
	}
}
