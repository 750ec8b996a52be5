//go:build rp2040 || rp2350

package dbg

import (
	"io"
	"machine"
)

// Default is the USB CDC console.
func Default() io.Writer { return machine.Serial }
