package stm32uart

import (
	"time"

	"nucleo-uart/x/mathx"
	"nucleo-uart/x/timex"
)

// ComputeBaudDivisor returns clockHz/baud rounded to nearest, the value BRR
// takes with 16x oversampling. baud == 0 yields 0.
func ComputeBaudDivisor(clockHz, baud uint32) uint32 {
	return uint32(mathx.RoundDiv(uint64(clockHz), uint64(baud)))
}

// Divisor is the value programmed into BRR.
func (d *Driver) Divisor() uint32 { return d.div }

// ActualBaud is the bit rate the programmed divisor really produces.
func (d *Driver) ActualBaud() uint32 {
	return uint32(mathx.RoundDiv(uint64(d.cfg.ClockHz), uint64(d.div)))
}

// BaudErrorPPM is the signed deviation of ActualBaud from the requested rate.
func (d *Driver) BaudErrorPPM() int32 {
	diff := int64(d.ActualBaud()) - int64(d.cfg.Baud)
	return int32(diff * 1_000_000 / int64(d.cfg.Baud))
}

// FrameTime is the wire time of one 8N1 character at ActualBaud.
func (d *Driver) FrameTime() time.Duration { return timex.FrameTime(d.ActualBaud(), 10) }
