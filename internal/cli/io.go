package cli

import (
	"fmt"
	"io"
)

// IO routes command output to stdout and diagnostics to stderr.
//
// IO implements [io.Writer] on stdout so rendered tables can be written in a
// single call.
type IO struct {
	out    io.Writer
	errOut io.Writer
}

// NewIO creates a new IO instance.
func NewIO(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut}
}

// Write writes p to stdout unchanged.
func (o *IO) Write(p []byte) (int, error) {
	return o.out.Write(p)
}

// Println writes to stdout.
func (o *IO) Println(a ...any) {
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout.
func (o *IO) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// Stderr returns an IO whose stdout is this IO's stderr. Help printed after
// a usage mistake goes through it so captured stdout stays clean.
func (o *IO) Stderr() *IO {
	return &IO{out: o.errOut, errOut: o.errOut}
}

// ErrPrintln writes to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}
