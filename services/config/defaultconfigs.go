package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: device ID
// Val: raw JSON bytes for that device, laid over Default()
// -----------------------------------------------------------------------------

const cfgPico = `{
  "serial": {"baud": 115200, "data_bits": 8, "stop_bits": 1, "parity": "none"},
  "line": {"capacity": 32, "terminator": 13},
  "button": {"pin": 14, "edge": "falling", "pull": "up", "source": "Button A"},
  "boot_delay_ms": 2000
}`

const cfgPicoBench = `{
  "button": {"pin": 15, "source": "Button B"},
  "boot_delay_ms": 0,
  "heartbeat_ms": 5000
}`

var embeddedConfigs = map[string][]byte{
	"pico":       []byte(cfgPico),
	"pico_bench": []byte(cfgPicoBench),
}
