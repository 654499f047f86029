//go:build stm32f4

package stm32uart

import (
	"runtime/volatile"
	"unsafe"
)

// MMIO maps register names onto the memory-mapped RCC, GPIO and USART3 blocks.
type MMIO struct {
	regs [NumRegs]*volatile.Register32
}

// NewMMIO resolves every register once; GPIO registers belong to port.
func NewMMIO(port uint8) *MMIO {
	m := &MMIO{}
	for r := Reg(0); r < NumRegs; r++ {
		m.regs[r] = (*volatile.Register32)(unsafe.Pointer(Address(r, port)))
	}
	return m
}

func (m *MMIO) Load(r Reg) uint32     { return m.regs[r].Get() }
func (m *MMIO) Store(r Reg, v uint32) { m.regs[r].Set(v) }
