// Package debug provides gated trace output for diagnosing resolution
// and collection behavior without polluting normal CLI output.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// EnableDebug can be overridden at build time:
// go build -ldflags "-X github.com/standardbeagle/jsem/internal/debug.EnableDebug=true"
var EnableDebug = "false"

var (
	mu     sync.Mutex
	output io.Writer
)

func init() {
	if EnableDebug == "true" || os.Getenv("JSEM_DEBUG") == "1" {
		output = os.Stderr
	}
}

// SetOutput directs debug output to w. Pass nil to disable.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Enabled reports whether debug output is currently active.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return output != nil
}

// Printf writes formatted debug output if debugging is enabled.
func Printf(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if output == nil {
		return
	}
	fmt.Fprintf(output, format, args...)
}
