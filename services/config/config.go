package config

import (
	"encoding/json"

	"mcuctl-go/errcode"
	"mcuctl-go/internal/halcore"
	"mcuctl-go/linebuf"
	"mcuctl-go/types"
	"mcuctl-go/x/mathx"
)

// -----------------------------------------------------------------------------
// String constants (live in flash, not RAM)
// -----------------------------------------------------------------------------

const (
	DefaultDevice  = "pico"
	OverflowNotice = "Buffer full. Please try again.\r\n"
	Terminator     = '\r'
)

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(device string) ([]byte, bool) {
	b, ok := embeddedConfigs[device]
	return b, ok
}

// -----------------------------------------------------------------------------
// Typed configuration
// -----------------------------------------------------------------------------

type Config struct {
	Serial      types.SerialConfig `json:"serial"`
	Line        LineConfig         `json:"line"`
	Button      ButtonConfig       `json:"button"`
	BootDelayMs uint32             `json:"boot_delay_ms"`
	HeartbeatMs uint32             `json:"heartbeat_ms"` // 0 = idle silently
}

type LineConfig struct {
	Capacity       int    `json:"capacity"`
	Terminator     byte   `json:"terminator"`
	OverflowNotice string `json:"overflow_notice"`
}

type ButtonConfig struct {
	Pin    int    `json:"pin"`
	Edge   string `json:"edge"` // "falling" | "rising" | "both"
	Pull   string `json:"pull"` // "up" | "down" | ""
	Source string `json:"source"`
}

func (b ButtonConfig) EdgeValue() halcore.Edge { return halcore.ParseEdge(b.Edge) }
func (b ButtonConfig) PullValue() halcore.Pull { return halcore.ParsePull(b.Pull) }

// Default is the built-in configuration used when nothing else is given.
func Default() Config {
	return Config{
		Serial: types.DefaultSerial(),
		Line: LineConfig{
			Capacity:       linebuf.DefaultCapacity,
			Terminator:     Terminator,
			OverflowNotice: OverflowNotice,
		},
		Button: ButtonConfig{
			Pin:    14,
			Edge:   "falling",
			Pull:   "up",
			Source: "Button A",
		},
		BootDelayMs: 2000,
	}
}

// Load resolves the embedded JSON for device and lays it over Default.
func Load(device string) (Config, error) {
	raw, ok := EmbeddedConfigLookup(device)
	if !ok || len(raw) == 0 {
		return Config{}, &errcode.E{C: errcode.InvalidParams, Op: "config", Msg: "no embedded config for device: " + device}
	}
	return Parse(raw)
}

// Parse decodes raw over Default and normalises the result.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errcode.Wrap(errcode.InvalidParams, "config", err)
	}
	if err := cfg.normalise(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalise() error {
	def := Default()

	c.Serial.Baud = mathx.Clamp(mathx.OrDefault(c.Serial.Baud, def.Serial.Baud), 1200, 921600)
	c.Serial.DataBits = mathx.Clamp(mathx.OrDefault(c.Serial.DataBits, def.Serial.DataBits), 5, 8)
	c.Serial.StopBits = mathx.Clamp(mathx.OrDefault(c.Serial.StopBits, def.Serial.StopBits), 1, 2)

	c.Line.Capacity = mathx.Clamp(mathx.OrDefault(c.Line.Capacity, def.Line.Capacity), 1, 256)
	c.Line.Terminator = mathx.OrDefault(c.Line.Terminator, def.Line.Terminator)
	if c.Line.OverflowNotice == "" {
		c.Line.OverflowNotice = def.Line.OverflowNotice
	}

	c.BootDelayMs = mathx.Clamp(c.BootDelayMs, 0, 10000)

	if c.Button.Source == "" {
		c.Button.Source = def.Button.Source
	}
	if c.Button.Pin < 0 {
		return &errcode.E{C: errcode.UnknownPin, Op: "config", Msg: "button pin"}
	}
	if c.Button.EdgeValue() == halcore.EdgeNone {
		return &errcode.E{C: errcode.InvalidParams, Op: "config", Msg: "button edge: " + c.Button.Edge}
	}
	return nil
}
