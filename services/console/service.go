package console

import (
	"context"
	"time"

	"nucleo-uart/errcode"
	"nucleo-uart/types"
	"nucleo-uart/x/conv"

	"tinygo.org/x/drivers"
)

// Port is what the console needs from a UART.
type Port interface {
	drivers.UART
	ReadByteContext(ctx context.Context) (byte, error)
}

// pollSlice bounds each receive poll so ticks and cancellation stay responsive.
const pollSlice = 50 * time.Millisecond

// Service prints periodic heartbeat lines and, optionally, echoes input.
// Run it from a single goroutine; it is the only user of the port.
type Service struct {
	port  Port
	cfg   types.ConsoleConfig
	beats uint64
	buf   [48]byte
}

func New(port Port, cfg types.ConsoleConfig) *Service {
	return &Service{port: port, cfg: cfg}
}

// Beats reports how many heartbeat lines were written.
func (s *Service) Beats() uint64 { return s.beats }

// Run loops until ctx is cancelled and returns ctx.Err().
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Banner != "" {
		s.writeLine(s.cfg.Banner)
	}

	var tickC <-chan time.Time
	if p := s.cfg.Period(); p > 0 {
		tick := time.NewTicker(p)
		defer tick.Stop()
		tickC = tick.C
	}

	echo := s.cfg.Echo
	for {
		if !echo {
			select {
			case <-ctx.Done():
				println("Info: console service stopping")
				return ctx.Err()
			case t := <-tickC:
				s.heartbeat(t)
			}
			continue
		}

		select {
		case <-ctx.Done():
			println("Info: console service stopping")
			return ctx.Err()
		case t := <-tickC:
			s.heartbeat(t)
		default:
		}
		if !s.echoOnce(ctx) {
			println("Info: console echo disabled, receiver not enabled")
			echo = false
		}
	}
}

// echoOnce waits up to pollSlice for one byte and echoes it. It returns false
// when the port cannot receive at all.
func (s *Service) echoOnce(ctx context.Context) bool {
	rctx, cancel := context.WithTimeout(ctx, pollSlice)
	b, err := s.port.ReadByteContext(rctx)
	cancel()
	switch errcode.Of(err) {
	case errcode.OK:
	case errcode.Timeout, errcode.Canceled:
		return true
	case errcode.NotConfigured:
		return false
	default:
		println("Error: console read:", err.Error())
		return true
	}
	if b == '\r' {
		_, _ = s.port.Write([]byte{'\r', '\n'})
		return true
	}
	_, _ = s.port.Write([]byte{b})
	return true
}

func (s *Service) heartbeat(t time.Time) {
	s.beats++
	line := append(s.buf[:0], t.Format("15:04:05")...)
	line = append(line, " heartbeat "...)
	line = conv.AppendUint(line, s.beats)
	s.writeLine(string(line))
}

func (s *Service) writeLine(l string) {
	_, _ = s.port.Write([]byte(l))
	_, _ = s.port.Write([]byte{'\r', '\n'})
}
