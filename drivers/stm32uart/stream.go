package stm32uart

import "tinygo.org/x/drivers"

// Ensure compile-time conformance with drivers.UART.
var _ drivers.UART = (*Driver)(nil)

// Buffered reports whether a received byte is waiting in DR (0 or 1).
func (d *Driver) Buffered() int {
	if d.regs.Load(SR)&SR_RXNE != 0 {
		return 1
	}
	return 0
}

// Read blocks for the first byte, then drains while RXNE stays set.
func (d *Driver) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = d.Recv()
	n := 1
	for n < len(p) && d.Buffered() > 0 {
		p[n] = byte(d.regs.Load(DR))
		n++
	}
	return n, nil
}

func (d *Driver) Write(p []byte) (int, error) {
	for _, b := range p {
		d.Send(int(b))
	}
	return len(p), nil
}

func (d *Driver) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		d.Send(int(s[i]))
	}
	return len(s), nil
}

// ReadByte implements io.ByteReader over Recv.
func (d *Driver) ReadByte() (byte, error) { return d.Recv(), nil }

// WriteByte implements io.ByteWriter over Send.
func (d *Driver) WriteByte(c byte) error {
	d.Send(int(c))
	return nil
}
