// Package stm32uart is a polled USART driver for STM32F4 parts: GPIO alternate
// function routing, clock enable, baud divisor and blocking byte transfer.
//
// Register layout follows RM0090 / RM0390 (SR/DR/BRR/CR1 USART, not the
// ISR/RDR/TDR layout of F7/L4). Defaults match USART3 on PD8/PD9, AF7, as
// wired to the ST-LINK virtual COM port on Nucleo-144 boards.
package stm32uart

// Reg names one 32-bit register the bring-up sequence touches.
type Reg uint8

const (
	AHB1ENR Reg = iota // RCC: GPIO port clocks
	APB1ENR            // RCC: USART2..5 clocks
	MODER              // GPIO: 2 bits per pin
	AFRL               // GPIO: AF select, pins 0..7
	AFRH               // GPIO: AF select, pins 8..15
	SR                 // USART status
	DR                 // USART data
	BRR                // USART baud rate
	CR1                // USART control 1

	NumRegs
)

var regNames = [NumRegs]string{"AHB1ENR", "APB1ENR", "MODER", "AFRL", "AFRH", "SR", "DR", "BRR", "CR1"}

func (r Reg) String() string {
	if r < NumRegs {
		return regNames[r]
	}
	return "Reg(?)"
}

// Registers is the capability to read and write the named registers. The
// target build maps it onto memory; host builds and tests substitute a
// simulated register set.
type Registers interface {
	Load(r Reg) uint32
	Store(r Reg, v uint32)
}

// --- Base addresses and offsets ---
const (
	rccBase    = 0x4002_3800
	rccAHB1ENR = 0x30
	rccAPB1ENR = 0x40

	gpioBase   = 0x4002_0000 // GPIOA; GPIOB..K follow at gpioStride
	gpioStride = 0x400
	gpioMODER  = 0x00
	gpioAFRL   = 0x20
	gpioAFRH   = 0x24

	usart3Base = 0x4000_4800
	usartSR    = 0x00
	usartDR    = 0x04
	usartBRR   = 0x08
	usartCR1   = 0x0C
)

// Address returns the bus address of r, with GPIO registers resolved against
// the given port index (A=0).
func Address(r Reg, port uint8) uintptr {
	gpio := uintptr(gpioBase + gpioStride*uintptr(port))
	switch r {
	case AHB1ENR:
		return rccBase + rccAHB1ENR
	case APB1ENR:
		return rccBase + rccAPB1ENR
	case MODER:
		return gpio + gpioMODER
	case AFRL:
		return gpio + gpioAFRL
	case AFRH:
		return gpio + gpioAFRH
	case SR:
		return usart3Base + usartSR
	case DR:
		return usart3Base + usartDR
	case BRR:
		return usart3Base + usartBRR
	case CR1:
		return usart3Base + usartCR1
	}
	return 0
}

// --- USART_SR flags ---
const (
	SR_RXNE = 1 << 5 // read data register not empty
	SR_TC   = 1 << 6 // transmission complete
	SR_TXE  = 1 << 7 // transmit data register empty

	SRResetValue = SR_TXE | SR_TC
)

// --- USART_CR1 bits ---
const (
	CR1_RE = 1 << 2
	CR1_TE = 1 << 3
	CR1_UE = 1 << 13
)

// --- GPIO field encodings ---
const (
	moderMask      = 0b11
	moderAlternate = 0b10
	afrMask        = 0xF
)
