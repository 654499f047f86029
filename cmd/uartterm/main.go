//go:build !tinygo

// Command uartterm is a host-side terminal for the board's UART console. It
// forwards keystrokes in raw mode and prints whatever the board sends. Ctrl-]
// enters command mode (see usage).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"nucleo-uart/services/config"

	tty "github.com/mattn/go-tty"
	"github.com/tarm/serial"
)

const escapeKey = 0x1d // Ctrl-]

func main() {
	dev := flag.String("port", "/dev/ttyACM0", "serial device of the board")
	baud := flag.Uint("baud", 0, "baud rate; 0 takes it from -board")
	board := flag.String("board", "nucleo_f446ze", "embedded board config supplying the default baud")
	flag.Parse()

	rate := uint32(*baud)
	if rate == 0 {
		cfg, err := config.Load(*board)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		rate = cfg.UART.Baud
	}

	t := &terminal{dev: *dev, out: os.Stdout}
	if err := t.open(rate); err != nil {
		log.Fatalf("open %s: %v", *dev, err)
	}
	defer t.close()

	keys, err := tty.Open()
	if err != nil {
		log.Fatalf("tty: %v", err)
	}
	defer keys.Close()

	fmt.Fprintf(t.out, "uartterm: %s @ %d baud, Ctrl-] for commands\r\n", *dev, rate)
	if err := t.run(keys); err != nil {
		log.Printf("terminal: %v", err)
	}
}

type terminal struct {
	dev string
	out io.Writer

	mu   sync.Mutex
	port *serial.Port
	baud uint32
}

// open (re)opens the device at baud; tarm/serial cannot change the rate of an
// open port.
func (t *terminal) open(baud uint32) error {
	p, err := serial.OpenPort(&serial.Config{Name: t.dev, Baud: int(baud), ReadTimeout: 100 * time.Millisecond})
	if err != nil {
		return err
	}
	t.mu.Lock()
	old := t.port
	t.port, t.baud = p, baud
	t.mu.Unlock()
	if old != nil {
		_ = old.Close()
	}
	go t.pump(p)
	return nil
}

func (t *terminal) close() {
	t.mu.Lock()
	p := t.port
	t.port = nil
	t.mu.Unlock()
	if p != nil {
		_ = p.Close()
	}
}

func (t *terminal) current(p *serial.Port) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.port == p
}

// pump copies board output to the terminal until p is replaced or fails.
func (t *terminal) pump(p *serial.Port) {
	buf := make([]byte, 128)
	for {
		n, err := p.Read(buf)
		if n > 0 {
			_, _ = t.out.Write(buf[:n])
		}
		if !t.current(p) {
			return
		}
		if err != nil && !errors.Is(err, io.EOF) {
			log.Printf("serial read: %v", err)
			return
		}
	}
}

func (t *terminal) write(p []byte) {
	t.mu.Lock()
	port := t.port
	t.mu.Unlock()
	if port == nil {
		return
	}
	if _, err := port.Write(p); err != nil {
		log.Printf("serial write: %v", err)
	}
}

// run reads keystrokes until quit or a tty error.
func (t *terminal) run(keys *tty.TTY) error {
	var line []rune
	cmdMode := false
	for {
		r, err := keys.ReadRune()
		if err != nil {
			return err
		}
		if !cmdMode {
			if r == escapeKey {
				cmdMode = true
				fmt.Fprint(t.out, "\r\n: ")
				continue
			}
			t.write([]byte(string(r)))
			continue
		}
		switch r {
		case '\r', '\n':
			cmdMode = false
			fmt.Fprint(t.out, "\r\n")
			if t.exec(string(line)) {
				return nil
			}
			line = line[:0]
		case 0x7f, '\b':
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Fprint(t.out, "\b \b")
			}
		case 0x1b, escapeKey:
			cmdMode = false
			line = line[:0]
			fmt.Fprint(t.out, "\r\n")
		default:
			line = append(line, r)
			fmt.Fprint(t.out, string(r))
		}
	}
}

// exec runs one command line and reports whether the terminal should exit.
func (t *terminal) exec(line string) bool {
	c, err := parseCommand(line)
	if err != nil {
		fmt.Fprintf(t.out, "%v\r\n", err)
		return false
	}
	switch c.kind {
	case cmdBaud:
		if err := t.open(c.baud); err != nil {
			fmt.Fprintf(t.out, "reopen at %d: %v\r\n", c.baud, err)
			return false
		}
		fmt.Fprintf(t.out, "baud %d\r\n", c.baud)
	case cmdSend, cmdHex:
		t.write(c.data)
	case cmdHelp:
		fmt.Fprintf(t.out, "%s\r\n", strings.ReplaceAll(usage, "\n", "\r\n"))
	case cmdQuit:
		return true
	}
	return false
}
