package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: board ID
// Val: raw JSON for that board. Absent fields keep types.DefaultUARTConfig
// values, so a board only lists what differs from the Nucleo-144 wiring.
// -----------------------------------------------------------------------------

const cfgNucleoF446ZE = `{
  "mode": "rxtx",
  "uart": {
    "clock_hz": 16000000,
    "baud": 115200,
    "port": "D",
    "tx_pin": 8,
    "rx_pin": 9,
    "alt_func": 7,
    "apb1_bit": 18
  },
  "console": {
    "interval": 2,
    "echo": true,
    "banner": "nucleo-f446ze usart3"
  }
}`

const cfgNucleoF429ZI = `{
  "uart": {
    "baud": 115200
  },
  "console": {
    "interval": 1,
    "echo": true
  }
}`

// Transmit-only bring-up, e.g. when PD9 is reused by the application.
const cfgNucleoF446ZETx = `{
  "mode": "tx",
  "uart": {
    "baud": 57600
  },
  "console": {
    "interval": 1
  }
}`

var embeddedConfigs = map[string][]byte{
	"nucleo_f446ze":    []byte(cfgNucleoF446ZE),
	"nucleo_f429zi":    []byte(cfgNucleoF429ZI),
	"nucleo_f446ze_tx": []byte(cfgNucleoF446ZETx),
}
