// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"polymer-core/polymer"
	"polymer/internal/clibase"
	"polymer/internal/cmdutil"
	"polymer/internal/output"
	"polymer/internal/writers"
)

// naive growth above this many steps gets a memory warning
const naiveWarnSteps = 25

// materialized chains up to this length are echoed in JSON output
const maxEchoChain = 4096

type Options struct {
	Input  string
	Steps  int
	Method string
	Output string

	Trace bool
	Quiet bool
}

// Run loads the input, grows it and writes the report. The return value is
// the process exit code: 0 ok, 1 input or runtime failure, 3 write failure,
// 130 canceled. Nothing is written to stdout unless the run succeeds.
func Run(parent context.Context, stdout, stderr io.Writer, o Options) int {
	p, err := polymer.LoadFile(o.Input)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	var g cmdutil.Grower = p
	if o.Method == clibase.MethodTally {
		g = p.Tally()
	} else if o.Steps > naiveWarnSteps {
		cmdutil.Warnf(stderr, o.Quiet, "naive growth doubles the chain every step; %d steps may exhaust memory (try --method %s)", o.Steps, clibase.MethodTally)
	}

	cmdutil.Tracef(stderr, o.Trace, "step %d: length %d", g.Steps(), g.Len())
	err = cmdutil.RunSteps(parent, g, o.Steps, func(g cmdutil.Grower) {
		cmdutil.Tracef(stderr, o.Trace, "step %d: length %d", g.Steps(), g.Len())
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, err)
		return 1
	}

	answer, err := g.Answer()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	res := output.Result{
		Input:       o.Input,
		Method:      o.Method,
		Steps:       g.Steps(),
		Length:      g.Len(),
		Answer:      answer,
		Frequencies: g.Frequencies(),
	}
	if o.Method != clibase.MethodTally && p.Len() <= maxEchoChain {
		res.Chain = p.Chain()
	}

	outw := bufio.NewWriter(stdout)
	if err := writers.WriteResult(o.Output, outw, res); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 3
	}
	return writers.FlushExit(outw, stderr)
}
