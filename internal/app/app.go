// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"polymer/internal/appcore"
	"polymer/internal/cli"
	"polymer/internal/clibase"
	"polymer/internal/config"
	"polymer/internal/version"
	"polymer/internal/writers"
)

const name = "polymer"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	env, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv, env)
	switch {
	case errors.Is(err, clibase.ErrPrintedAndExitOK):
		cli.PrintExamples(outw, name)
		return writers.FlushExit(outw, stderr)
	case errors.Is(err, flag.ErrHelp):
		fs.SetOutput(outw)
		fs.Usage()
		return writers.FlushExit(outw, stderr)
	case err != nil:
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return writers.FlushExit(outw, stderr)
	}

	return appcore.Run(parent, stdout, stderr, appcore.Options{
		Input:  opts.Input,
		Steps:  opts.Steps,
		Method: opts.Method,
		Output: opts.Output,
		Trace:  opts.Trace,
		Quiet:  opts.Quiet,
	})
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
