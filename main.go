package main

import (
	"context"
	"time"

	"nucleo-uart/drivers/stm32uart"
	"nucleo-uart/services/config"
	"nucleo-uart/services/console"
	"nucleo-uart/services/platform"
	"nucleo-uart/types"
	"nucleo-uart/x/conv"
)

// board selects the embedded configuration; override with
// -ldflags "-X main.board=nucleo_f429zi".
var board = "nucleo_f446ze"

func main() {
	// Allow the ST-LINK VCP to settle before the first character.
	time.Sleep(500 * time.Millisecond)
	println("Info: boot", platform.Name, board)

	cfg, err := config.Load(board)
	if err != nil {
		println("Error: config:", err.Error())
		return
	}

	u, err := stm32uart.New(platform.Registers(cfg.UART), cfg.UART)
	if err != nil {
		println("Error: uart:", err.Error())
		return
	}
	if cfg.Mode == types.UARTModeTransmitOnly {
		u.InitTransmitterOnly()
	} else {
		u.InitTransceiver()
	}

	var brr [16]byte
	println("Info: uart", u.Mode().String(), string(conv.AppendHex32(append(brr[:0], "BRR="...), u.Divisor())),
		"baud", u.ActualBaud(), "err_ppm", u.BaudErrorPPM(), "frame", u.FrameTime().String())

	svc := console.New(u, cfg.Console)
	_ = svc.Run(context.Background())
}
