package types

import (
	"nucleo-uart/errcode"
	"nucleo-uart/x/mathx"
)

// ------------------------
// Serial
// ------------------------

// Defaults for the Nucleo-144 (STM32F4) wiring: USART3 on PD8 (TX) / PD9 (RX), AF7,
// clocked from APB1 at the 16 MHz HSI reset value.
const (
	DefaultClockHz = 16_000_000
	DefaultBaud    = 115200
	DefaultPort    = "D"
	DefaultTXPin   = 8
	DefaultRXPin   = 9
	DefaultAltFunc = 7
	DefaultAPB1Bit = 18 // RCC_APB1ENR.USART3EN
)

// UARTConfig carries every constant the bring-up sequence depends on.
type UARTConfig struct {
	ClockHz uint32 `json:"clock_hz"`
	Baud    uint32 `json:"baud"`
	Port    string `json:"port"` // GPIO port letter, "A".."K"
	TXPin   uint8  `json:"tx_pin"`
	RXPin   uint8  `json:"rx_pin"`
	AltFunc uint8  `json:"alt_func"`
	APB1Bit uint8  `json:"apb1_bit"` // UART clock-enable bit in RCC_APB1ENR
}

func DefaultUARTConfig() UARTConfig {
	return UARTConfig{
		ClockHz: DefaultClockHz,
		Baud:    DefaultBaud,
		Port:    DefaultPort,
		TXPin:   DefaultTXPin,
		RXPin:   DefaultRXPin,
		AltFunc: DefaultAltFunc,
		APB1Bit: DefaultAPB1Bit,
	}
}

// PortIndex maps the port letter to its index (A=0). ok is false for
// anything outside A..K.
func (c UARTConfig) PortIndex() (idx uint8, ok bool) {
	if len(c.Port) != 1 {
		return 0, false
	}
	p := c.Port[0]
	if p >= 'a' && p <= 'k' {
		p -= 'a' - 'A'
	}
	if p < 'A' || p > 'K' {
		return 0, false
	}
	return p - 'A', true
}

// Validate rejects configurations that would program a nonsensical divisor
// or touch pins/bits that do not exist.
func (c UARTConfig) Validate() error {
	const op = "uart.config"
	switch {
	case c.ClockHz == 0:
		return errcode.New(errcode.InvalidParams, op, "clock_hz is zero")
	case c.Baud == 0:
		return errcode.New(errcode.InvalidParams, op, "baud is zero")
	case c.TXPin > 15 || c.RXPin > 15:
		return errcode.New(errcode.UnknownPin, op, "pin out of range 0..15")
	case c.TXPin == c.RXPin:
		return errcode.New(errcode.InvalidParams, op, "tx_pin equals rx_pin")
	case c.AltFunc > 15:
		return errcode.New(errcode.InvalidParams, op, "alt_func out of range 0..15")
	case c.APB1Bit > 31:
		return errcode.New(errcode.InvalidParams, op, "apb1_bit out of range 0..31")
	}
	if _, ok := c.PortIndex(); !ok {
		return errcode.New(errcode.UnknownPin, op, "port must be A..K")
	}
	// BRR holds a 12.4 fixed-point value with 16x oversampling: the mantissa must
	// be non-zero and the whole value must fit in 16 bits.
	div := mathx.RoundDiv(uint64(c.ClockHz), uint64(c.Baud))
	if !mathx.Between(div, 16, 0xFFFF) {
		return errcode.New(errcode.InvalidParams, op, "baud not reachable from clock_hz")
	}
	return nil
}
