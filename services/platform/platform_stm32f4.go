//go:build stm32f4

package platform

import (
	"nucleo-uart/drivers/stm32uart"
	"nucleo-uart/types"
)

const Name = "stm32f4"

// Registers maps the USART3 block and the configured GPIO port.
func Registers(cfg types.UARTConfig) stm32uart.Registers {
	port, _ := cfg.PortIndex()
	return stm32uart.NewMMIO(port)
}
