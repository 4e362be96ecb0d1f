// internal/cli/options.go
package cli

import (
	"flag"
	"io"

	"polymer/internal/clibase"
	"polymer/internal/cliutil"
	"polymer/internal/config"
)

// Options holds all CLI flags and arguments.
type Options struct {
	clibase.Common
}

// PrintExamples prints the quickstart.
func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, clibase.PolymerExamples)
}

// ParseArgs registers and parses all flags over the defaults in def.
// It returns flag.ErrHelp for -h/--help and clibase.ErrPrintedAndExitOK for --examples.
func ParseArgs(fs *flag.FlagSet, argv []string, def config.Env) (Options, error) {
	var o Options
	var help, showExamples bool

	clibase.Register(fs, &o.Common, def)
	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}
	if err := clibase.AfterParse(&o.Common, posArgs); err != nil {
		return o, err
	}
	return o, nil
}
