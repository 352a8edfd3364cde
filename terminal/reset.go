package terminal

import (
	"fmt"
	"io"
	"os"
)

var (
	csiSGR0          = []byte("\x1b[0m")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")
	csiMouseOff      = []byte("\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l")
)

// EmergencyReset returns a terminal left in raw alt-screen mode to a usable state
// Used after a crash, when the tcell screen may not get to run Fini
func EmergencyReset(w io.Writer) {
	for _, seq := range [][]byte{csiMouseOff, csiCursorShow, csiAltScreenExit, csiSGR0, csiAutoWrapOn} {
		_, _ = w.Write(seq)
	}
	if f, ok := w.(*os.File); ok {
		_ = f.Sync()
	}

	// escape sequences do not restore termios
	resetTerminalMode()
}

// ReportCrash resets term and writes the panic and its stack to w
// Raw mode may still be active, so lines end in \r\n
func ReportCrash(term, w io.Writer, r any, stack []byte) {
	EmergencyReset(term)
	fmt.Fprintf(w, "\r\n\x1b[31mCUBE DODGE CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(w, "Stack Trace:\r\n%s\r\n", stack)
	if f, ok := w.(*os.File); ok {
		_ = f.Sync()
	}
}
