package stm32uart

import (
	"context"
	"errors"
	"runtime"

	"nucleo-uart/errcode"
	"nucleo-uart/types"
)

// Mode reports which bring-up sequence last ran.
type Mode uint8

const (
	ModeReset Mode = iota
	ModeTransceiver
	ModeTransmitOnly
)

func (m Mode) String() string {
	switch m {
	case ModeTransceiver:
		return "rxtx"
	case ModeTransmitOnly:
		return "tx"
	default:
		return "reset"
	}
}

type Option func(*Driver)

// WithYield sets the step run between two status-register polls. The default
// is runtime.Gosched.
func WithYield(f func()) Option {
	return func(d *Driver) {
		if f != nil {
			d.yield = f
		}
	}
}

// Driver owns one USART and the two GPIO pins routed to it. It is not safe for
// concurrent use; callers serialise access.
type Driver struct {
	regs  Registers
	cfg   types.UARTConfig
	port  uint8
	div   uint32
	yield func()
	mode  Mode
}

func New(regs Registers, cfg types.UARTConfig, opts ...Option) (*Driver, error) {
	if regs == nil {
		return nil, errcode.New(errcode.InvalidParams, "uart.new", "nil registers")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	port, _ := cfg.PortIndex()
	d := &Driver{
		regs:  regs,
		cfg:   cfg,
		port:  port,
		div:   ComputeBaudDivisor(cfg.ClockHz, cfg.Baud),
		yield: runtime.Gosched,
	}
	for _, o := range opts {
		o(d)
	}
	return d, nil
}

func (d *Driver) Config() types.UARTConfig { return d.cfg }
func (d *Driver) Mode() Mode               { return d.mode }

// ---------------- Bring-up ----------------

// InitTransceiver routes TX and RX to the USART, enables its clock, programs
// the divisor and enables both directions. CR1 direction bits are merged into
// whatever the register already holds.
func (d *Driver) InitTransceiver() {
	d.configurePins(true)
	d.enablePeripheral()
	d.modify(CR1, CR1_TE|CR1_RE, 0)
	d.modify(CR1, CR1_UE, 0)
	d.mode = ModeTransceiver
}

// InitTransmitterOnly routes only TX. CR1 is overwritten with TE alone, so any
// previously set control bit (RE included) is cleared before UE is added.
func (d *Driver) InitTransmitterOnly() {
	d.configurePins(false)
	d.enablePeripheral()
	d.regs.Store(CR1, CR1_TE)
	d.modify(CR1, CR1_UE, 0)
	d.mode = ModeTransmitOnly
}

func (d *Driver) configurePins(rx bool) {
	d.modify(AHB1ENR, 1<<d.port, 0)
	d.altFunc(d.cfg.TXPin)
	if rx {
		d.altFunc(d.cfg.RXPin)
	}
}

// altFunc puts pin in alternate-function mode and selects the configured AF.
func (d *Driver) altFunc(pin uint8) {
	shift := 2 * uint32(pin)
	d.modify(MODER, moderAlternate<<shift, moderMask<<shift)

	afr, slot := AFRL, pin
	if pin >= 8 {
		afr, slot = AFRH, pin-8
	}
	shift = 4 * uint32(slot)
	d.modify(afr, uint32(d.cfg.AltFunc)<<shift, afrMask<<shift)
}

func (d *Driver) enablePeripheral() {
	d.modify(APB1ENR, 1<<d.cfg.APB1Bit, 0)
	d.regs.Store(BRR, d.div)
}

// modify is the read-modify-write helper: clear first, then set.
func (d *Driver) modify(r Reg, set, clear uint32) {
	d.regs.Store(r, (d.regs.Load(r)&^clear)|set)
}

// ---------------- Blocking transfer ----------------

// Recv spins until RXNE is set and returns the received byte. It never
// returns if no byte arrives.
func (d *Driver) Recv() byte {
	d.waitFor(SR_RXNE)
	return byte(d.regs.Load(DR))
}

// Send spins until TXE is set, then writes the low 8 bits of v to DR.
func (d *Driver) Send(v int) {
	d.waitFor(SR_TXE)
	d.regs.Store(DR, uint32(v)&0xFF)
}

// Putchar backs character-output redirection: it sends c and returns it.
func (d *Driver) Putchar(c int) int {
	d.Send(c)
	return c
}

func (d *Driver) waitFor(flag uint32) {
	for d.regs.Load(SR)&flag == 0 {
		d.yield()
	}
}

// ---------------- Bounded transfer ----------------

// ReadByteContext is Recv bounded by ctx. It fails fast with NotConfigured
// when the receiver was never enabled.
func (d *Driver) ReadByteContext(ctx context.Context) (byte, error) {
	const op = "uart.read"
	if d.mode != ModeTransceiver {
		return 0, errcode.New(errcode.NotConfigured, op, "receiver not enabled")
	}
	if err := d.waitForContext(ctx, SR_RXNE, op); err != nil {
		return 0, err
	}
	return byte(d.regs.Load(DR)), nil
}

// WriteByteContext is Send bounded by ctx.
func (d *Driver) WriteByteContext(ctx context.Context, v int) error {
	const op = "uart.write"
	if d.mode == ModeReset {
		return errcode.New(errcode.NotConfigured, op, "transmitter not enabled")
	}
	if err := d.waitForContext(ctx, SR_TXE, op); err != nil {
		return err
	}
	d.regs.Store(DR, uint32(v)&0xFF)
	return nil
}

func (d *Driver) waitForContext(ctx context.Context, flag uint32, op string) error {
	for d.regs.Load(SR)&flag == 0 {
		if err := ctx.Err(); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return errcode.Wrap(errcode.Timeout, op, err)
			}
			return errcode.Wrap(errcode.Canceled, op, err)
		}
		d.yield()
	}
	return nil
}
