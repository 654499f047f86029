package console

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"nucleo-uart/drivers/stm32uart"
	"nucleo-uart/drivers/stm32uart/regsim"
	"nucleo-uart/types"
)

func newPort(t *testing.T, txOnly bool) (*stm32uart.Driver, *regsim.Registers) {
	t.Helper()
	sim := regsim.New()
	d, err := stm32uart.New(sim, types.DefaultUARTConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if txOnly {
		d.InitTransmitterOnly()
	} else {
		d.InitTransceiver()
	}
	return d, sim
}

func run(t *testing.T, s *Service, d time.Duration) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	if err := s.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run = %v, want deadline exceeded", err)
	}
}

func TestConsole_BannerHeartbeatEcho(t *testing.T) {
	d, sim := newPort(t, false)
	sim.Inject('h', 'i', '\r')

	s := New(d, types.ConsoleConfig{Interval: 0.02, Echo: true, Banner: "hello"})
	run(t, s, 200*time.Millisecond)

	out := string(sim.Transmitted())
	if !strings.HasPrefix(out, "hello\r\n") {
		t.Fatalf("banner missing: %q", out)
	}
	if !strings.Contains(out, "hi\r\n") {
		t.Fatalf("echo missing: %q", out)
	}
	if !strings.Contains(out, " heartbeat 1\r\n") || s.Beats() == 0 {
		t.Fatalf("heartbeat missing (beats=%d): %q", s.Beats(), out)
	}
	if sim.Pending() != 0 {
		t.Fatalf("%d bytes left unread", sim.Pending())
	}
}

func TestConsole_HeartbeatOnly(t *testing.T) {
	d, sim := newPort(t, true)
	s := New(d, types.ConsoleConfig{Interval: 0.01})
	run(t, s, 80*time.Millisecond)

	out := string(sim.Transmitted())
	if s.Beats() < 2 || !strings.Contains(out, " heartbeat 2\r\n") {
		t.Fatalf("beats=%d out=%q", s.Beats(), out)
	}
}

func TestConsole_EchoFallsBackWithoutReceiver(t *testing.T) {
	d, sim := newPort(t, true)
	sim.Inject('x')
	s := New(d, types.ConsoleConfig{Interval: 0.01, Echo: true})
	run(t, s, 60*time.Millisecond)

	out := string(sim.Transmitted())
	if strings.Contains(out, "x") {
		t.Fatalf("echoed on a transmit-only port: %q", out)
	}
	if s.Beats() == 0 {
		t.Fatal("no heartbeat after echo fallback")
	}
}

func TestConsole_Idle(t *testing.T) {
	d, sim := newPort(t, false)
	s := New(d, types.ConsoleConfig{})
	run(t, s, 20*time.Millisecond)
	if len(sim.Transmitted()) != 0 {
		t.Fatalf("unexpected output %q", sim.Transmitted())
	}
}

func TestConsole_TinyIntervalClampsToFloor(t *testing.T) {
	d, _ := newPort(t, true)
	s := New(d, types.ConsoleConfig{Interval: 1e-10})
	run(t, s, 60*time.Millisecond)
	if s.Beats() == 0 || s.Beats() > 6 {
		t.Fatalf("beats = %d, want a 10ms cadence", s.Beats())
	}
}
