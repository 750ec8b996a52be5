package types

import "strconv"

// ------------------------
// Serial
// ------------------------

type Parity uint8

const (
	ParityNone Parity = iota
	ParityEven
	ParityOdd
)

func (p Parity) String() string {
	switch p {
	case ParityEven:
		return "even"
	case ParityOdd:
		return "odd"
	default:
		return "none"
	}
}

func (p Parity) MarshalJSON() ([]byte, error) { return []byte(`"` + p.String() + `"`), nil }

func (p *Parity) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	switch s {
	case "even":
		*p = ParityEven
	case "odd":
		*p = ParityOdd
	default:
		*p = ParityNone
	}
	return nil
}

// SerialConfig is the line setup of the data UART.
type SerialConfig struct {
	Baud     uint32 `json:"baud"`
	DataBits uint8  `json:"data_bits"`
	StopBits uint8  `json:"stop_bits"`
	Parity   Parity `json:"parity"`
}

// DefaultSerial is 115200 8N1.
func DefaultSerial() SerialConfig {
	return SerialConfig{Baud: 115200, DataBits: 8, StopBits: 1, Parity: ParityNone}
}

// String renders the config as e.g. "115200 8N1".
func (c SerialConfig) String() string {
	p := "N"
	switch c.Parity {
	case ParityEven:
		p = "E"
	case ParityOdd:
		p = "O"
	}
	return strconv.FormatUint(uint64(c.Baud), 10) + " " +
		strconv.Itoa(int(c.DataBits)) + p + strconv.Itoa(int(c.StopBits))
}
