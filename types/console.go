package types

import (
	"time"

	"nucleo-uart/x/mathx"
)

// Heartbeat period bounds. Configured intervals are rejected below
// MinHeartbeat and clamped to MaxHeartbeat.
const (
	MinHeartbeat = 10 * time.Millisecond
	MaxHeartbeat = 24 * time.Hour
)

// ConsoleConfig drives the console service that runs on top of the UART.
type ConsoleConfig struct {
	Interval float64 `json:"interval"` // heartbeat period in seconds; 0 disables
	Echo     bool    `json:"echo"`     // echo received bytes back
	Banner   string  `json:"banner,omitempty"`
}

// Period converts Interval to a ticker period. It returns 0 when the
// heartbeat is disabled and never returns a positive value under MinHeartbeat.
func (c ConsoleConfig) Period() time.Duration {
	if !(c.Interval > 0) {
		return 0
	}
	secs := mathx.Clamp(c.Interval, MinHeartbeat.Seconds(), MaxHeartbeat.Seconds())
	return time.Duration(secs * float64(time.Second))
}

// UART bring-up modes selectable from board configuration.
const (
	UARTModeTransceiver  = "rxtx"
	UARTModeTransmitOnly = "tx"
)

// BoardConfig is the per-board document held by the config service.
type BoardConfig struct {
	Board   string        `json:"board"`
	Mode    string        `json:"mode"` // "rxtx" | "tx"
	UART    UARTConfig    `json:"uart"`
	Console ConsoleConfig `json:"console"`
}
