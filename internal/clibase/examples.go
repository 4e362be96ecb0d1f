// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested examples.
// Apps should catch this and exit 0 after printing examples.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples prints a quickstart header, the body, and a pointer to --help.
func PrintExamples(out io.Writer, name string, body func(io.Writer)) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s — quickstart\n\n", name)
	if body != nil {
		body(out)
	}
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}

// PolymerExamples is the quickstart body for the polymer tool.
func PolymerExamples(out io.Writer) {
	_, _ = fmt.Fprintln(out, "  # 10 steps over the default input")
	_, _ = fmt.Fprintln(out, "  polymer")
	_, _ = fmt.Fprintln(out, "\n  # 40 steps without building the chain")
	_, _ = fmt.Fprintln(out, "  polymer --method tally --steps 40 data/day14/input.txt")
	_, _ = fmt.Fprintln(out, "\n  # JSON report from STDIN")
	_, _ = fmt.Fprintln(out, "  zcat rules.txt.gz | polymer -o json -")
}
