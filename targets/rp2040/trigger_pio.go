//go:build rp2040

package main

// PIO trigger pulse generation. The state machine times the trigger
// pulse in hardware, so the pulse width is exact regardless of what the
// CPU is doing.

import (
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"

	"sonar/core"
)

// PIO program for one-shot trigger pulses.
//
// Command word: pulse high time in microseconds.
//
// Program flow:
//  1. Pull the pulse width from the FIFO into X
//  2. Drive the trigger pin high
//  3. Count X down, one loop iteration per microsecond
//  4. Drive the trigger pin low and wait for the next command
//
// buildTriggerProgram creates the trigger PIO program using AssemblerV0
func buildTriggerProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		// .wrap_target
		asm.Pull(false, true).Encode(),        // 0: pull block
		asm.Out(rp2pio.OutDestX, 32).Encode(), // 1: out x, 32 (high time in us)
		asm.Set(rp2pio.SetDestPins, 1).Encode(),
		// delay_loop:
		asm.Jmp(3, rp2pio.JmpXNZeroDec).Encode(), // 3: jmp x--, 3
		asm.Set(rp2pio.SetDestPins, 0).Encode(),
		// .wrap
	}
}

const triggerPIOOrigin = 0 // Load at offset 0 for correct jump addresses

// PIOTrigger implements core.TriggerDriver using an RP2040 PIO state
// machine.
type PIOTrigger struct {
	sm    rp2pio.StateMachine
	pin   machine.Pin
	delay core.DelayFunc
}

// NewPIOTrigger claims a state machine on the given PIO block and loads
// the pulse program.
// pioNum: 0 for PIO0, 1 for PIO1
// smNum: 0-3 for state machine number
func NewPIOTrigger(pioNum, smNum uint8, pin machine.Pin, delay core.DelayFunc) (*PIOTrigger, error) {
	var pioHW *rp2pio.PIO
	if pioNum == 0 {
		pioHW = rp2pio.PIO0
	} else {
		pioHW = rp2pio.PIO1
	}
	sm := pioHW.StateMachine(smNum)
	sm.TryClaim()

	program := buildTriggerProgram()
	offset, err := pioHW.AddProgram(program, triggerPIOOrigin)
	if err != nil {
		return nil, err
	}

	pin.Configure(machine.PinConfig{Mode: pioHW.PinMode()})

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetSetPins(pin, 1)
	cfg.SetOutShift(true, false, 32)
	cfg.SetWrap(offset+uint8(len(program))-1, offset)

	// 125MHz / 125 = 1MHz: one delay-loop iteration per microsecond
	cfg.SetClkDivIntFrac(125, 0)

	sm.Init(offset, cfg)
	sm.SetPindirsConsecutive(pin, 1, true)
	sm.SetPinsConsecutive(pin, 1, false)
	sm.SetEnabled(true)

	return &PIOTrigger{sm: sm, pin: pin, delay: delay}, nil
}

// Fire queues one pulse of at least minHighMicros and blocks until the
// pulse has completed.
func (p *PIOTrigger) Fire(minHighMicros uint32) {
	for p.sm.IsTxFIFOFull() {
		// Busy wait - should be very brief
	}
	p.sm.TxPut(minHighMicros)

	// The state machine times the pulse; hold the caller until the line
	// is low again so Fire keeps its blocking contract.
	p.delay(minHighMicros)
}
