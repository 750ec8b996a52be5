//go:build !(rp2040 || rp2350)

package dbg

import (
	"io"
	"os"
)

func Default() io.Writer { return os.Stderr }
