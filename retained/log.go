package retained

import (
	"io"
	"log"
)

// debugLog records pin transitions, rescans and touch interception.
// Output is discarded until SetDebugOutput is called.
var debugLog = log.New(io.Discard, "[sticky] ", log.Lmicroseconds)

// SetDebugOutput directs the package's debug log to w. Pass nil to silence it.
func SetDebugOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	debugLog.SetOutput(w)
}

func logf(format string, args ...any) {
	if debugLog.Writer() == io.Discard {
		return
	}
	debugLog.Printf(format, args...)
}
