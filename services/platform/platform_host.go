//go:build !stm32f4

package platform

import (
	"io"
	"os"

	"nucleo-uart/drivers/stm32uart"
	"nucleo-uart/drivers/stm32uart/regsim"
	"nucleo-uart/types"
)

const Name = "host"

// Registers returns a simulated register set whose serial line is the
// process's stdin and stdout, so the firmware runs without hardware.
func Registers(types.UARTConfig) stm32uart.Registers {
	return newSimulated(os.Stdin, os.Stdout)
}

func newSimulated(in io.Reader, out io.Writer) *regsim.Registers {
	sim := regsim.New()
	sim.Out = out
	if in != nil {
		go func() {
			if err := sim.Feed(in); err != nil {
				println("Error: platform: stdin:", err.Error())
			}
		}()
	}
	return sim
}
