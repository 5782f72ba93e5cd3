package sgr

import (
	"strconv"
	"strings"
)

const (
	// csi introduces a control sequence
	csi = "\x1b["

	// Reset is the escape sequence that clears all active styling back to
	// the terminal defaults
	Reset = "\x1b[0m"
)

// seqWriter accumulates the parameters of a single SGR sequence, joining
// them with semicolons. A colon-qualified sub-parameter (the underline
// variants) is written as one token
type seqWriter struct {
	sb  strings.Builder
	any bool
}

func (w *seqWriter) param(p string) {
	if w.any {
		w.sb.WriteByte(';')
	}
	w.sb.WriteString(p)
	w.any = true
}

func (w *seqWriter) num(n int) {
	w.param(strconv.Itoa(n))
}
