// Package regsim is a simulated STM32F4 USART register set for host builds
// and tests. It models the parts of the peripheral the driver observes:
// TXE/RXNE handshaking, DR side effects and the control bits gating them.
package regsim

import (
	"io"
	"sync"

	"nucleo-uart/drivers/stm32uart"
)

// MaxLog caps the write log; later Stores still take effect but are not
// recorded.
const MaxLog = 4096

// Write is one recorded Store.
type Write struct {
	Reg   stm32uart.Reg
	Value uint32
}

type Registers struct {
	mu   sync.Mutex
	vals [stm32uart.NumRegs]uint32
	log  []Write
	tx   []byte
	rx   []byte

	// TXLatency is how many SR reads TXE stays clear after a DR write.
	TXLatency int
	// Loopback feeds transmitted bytes back into the receive queue.
	Loopback bool
	// Out, when set, receives every transmitted byte instead of the
	// in-memory transmit record.
	Out io.Writer

	txBusy int
}

func New() *Registers {
	r := &Registers{}
	r.vals[stm32uart.SR] = stm32uart.SRResetValue
	return r
}

func (r *Registers) Load(reg stm32uart.Reg) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch reg {
	case stm32uart.SR:
		if r.txBusy > 0 {
			r.txBusy--
			if r.txBusy == 0 {
				r.vals[reg] |= stm32uart.SR_TXE | stm32uart.SR_TC
			}
		}
		if r.rxEnabled() && len(r.rx) > 0 {
			r.vals[reg] |= stm32uart.SR_RXNE
		}
		return r.vals[reg]
	case stm32uart.DR:
		// Reading DR clears RXNE and pops the next byte.
		if !r.rxEnabled() || len(r.rx) == 0 {
			return r.vals[reg]
		}
		b := r.rx[0]
		r.rx = r.rx[1:]
		r.vals[reg] = uint32(b)
		if len(r.rx) == 0 {
			r.vals[stm32uart.SR] &^= stm32uart.SR_RXNE
		}
		return uint32(b)
	}
	return r.vals[reg]
}

func (r *Registers) Store(reg stm32uart.Reg, v uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.log) < MaxLog {
		r.log = append(r.log, Write{Reg: reg, Value: v})
	}
	if reg != stm32uart.DR {
		r.vals[reg] = v
		return
	}
	r.vals[reg] = v
	if !r.txEnabled() {
		return
	}
	b := byte(v)
	if r.Out != nil {
		_, _ = r.Out.Write([]byte{b})
	} else {
		r.tx = append(r.tx, b)
	}
	if r.Loopback {
		r.rx = append(r.rx, b)
	}
	if r.TXLatency > 0 {
		r.txBusy = r.TXLatency
		r.vals[stm32uart.SR] &^= stm32uart.SR_TXE | stm32uart.SR_TC
	}
}

func (r *Registers) enabled(bits uint32) bool {
	cr1 := r.vals[stm32uart.CR1]
	return cr1&(stm32uart.CR1_UE|bits) == stm32uart.CR1_UE|bits
}

func (r *Registers) rxEnabled() bool { return r.enabled(stm32uart.CR1_RE) }
func (r *Registers) txEnabled() bool { return r.enabled(stm32uart.CR1_TE) }

// Feed copies src onto the receive line until EOF or a read error.
func (r *Registers) Feed(src io.Reader) error {
	var buf [64]byte
	for {
		n, err := src.Read(buf[:])
		if n > 0 {
			r.Inject(buf[:n]...)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Inject queues bytes on the receive line. They become visible through
// RXNE once the receiver is enabled.
func (r *Registers) Inject(b ...byte) {
	r.mu.Lock()
	r.rx = append(r.rx, b...)
	r.mu.Unlock()
}

// Set presets a register without recording a write.
func (r *Registers) Set(reg stm32uart.Reg, v uint32) {
	r.mu.Lock()
	r.vals[reg] = v
	r.mu.Unlock()
}

// Peek returns a register value without read side effects.
func (r *Registers) Peek(reg stm32uart.Reg) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.vals[reg]
}

// Writes returns a copy of the recorded Stores (at most MaxLog), oldest first.
func (r *Registers) Writes() []Write {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Write(nil), r.log...)
}

// Transmitted returns a copy of the bytes shifted out so far.
func (r *Registers) Transmitted() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]byte(nil), r.tx...)
}

// Pending reports how many injected bytes have not been read yet.
func (r *Registers) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rx)
}

var _ stm32uart.Registers = (*Registers)(nil)
