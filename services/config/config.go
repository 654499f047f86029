package config

import (
	"encoding/json"
	"sort"

	"nucleo-uart/errcode"
	"nucleo-uart/types"
)

const op = "config.load"

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(board string) ([]byte, bool) {
	b, ok := embeddedConfigs[board]
	return b, ok
}

// Boards lists the embedded board IDs in sorted order.
func Boards() []string {
	ids := make([]string, 0, len(embeddedConfigs))
	for id := range embeddedConfigs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Default is the configuration every board document is layered on.
func Default() types.BoardConfig {
	return types.BoardConfig{
		Mode: types.UARTModeTransceiver,
		UART: types.DefaultUARTConfig(),
		Console: types.ConsoleConfig{
			Interval: 1,
		},
	}
}

// Load resolves the embedded document for board, layers it over Default and
// validates the result.
func Load(board string) (types.BoardConfig, error) {
	raw, ok := EmbeddedConfigLookup(board)
	if !ok || len(raw) == 0 {
		return types.BoardConfig{}, errcode.New(errcode.UnknownBoard, op, "no embedded config for board: "+board)
	}
	cfg, err := Decode(raw)
	if err != nil {
		return types.BoardConfig{}, err
	}
	if cfg.Board == "" {
		cfg.Board = board
	}
	return cfg, nil
}

// Decode parses one board document over Default and validates it.
func Decode(raw []byte) (types.BoardConfig, error) {
	cfg := Default()
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return types.BoardConfig{}, errcode.Wrap(errcode.InvalidPayload, op, err)
	}
	switch cfg.Mode {
	case "":
		cfg.Mode = types.UARTModeTransceiver
	case types.UARTModeTransceiver, types.UARTModeTransmitOnly:
	default:
		return types.BoardConfig{}, errcode.New(errcode.InvalidParams, op, "mode must be rxtx or tx")
	}
	if iv := cfg.Console.Interval; iv < 0 {
		return types.BoardConfig{}, errcode.New(errcode.InvalidParams, op, "console interval is negative")
	} else if iv > 0 && iv < types.MinHeartbeat.Seconds() {
		return types.BoardConfig{}, errcode.New(errcode.InvalidParams, op, "console interval below "+types.MinHeartbeat.String())
	}
	if cfg.Mode == types.UARTModeTransmitOnly {
		// Nothing to echo without a receiver.
		cfg.Console.Echo = false
	}
	if err := cfg.UART.Validate(); err != nil {
		return types.BoardConfig{}, err
	}
	return cfg, nil
}
