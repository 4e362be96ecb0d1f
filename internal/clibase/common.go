// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"polymer/internal/cliutil"
	"polymer/internal/config"
)

// Growth methods.
const (
	MethodNaive = "naive" // materialize the chain every step
	MethodTally = "tally" // track pair counts only
)

// Common holds every CLI field of the polymer tool.
type Common struct {
	// Input
	Input string

	// Growth
	Steps  int
	Method string

	// Output
	Output string // text|json

	// Misc
	Trace   bool
	Quiet   bool
	Version bool
}

// Register wires the flags onto fs. Defaults come from def so the
// environment can move them while flags still win.
func Register(fs *flag.FlagSet, c *Common, def config.Env) {
	// Input
	fs.StringVar(&c.Input, "input", def.Input, "template + rules file or '-'")
	fs.StringVar(&c.Input, "i", def.Input, "alias of --input")

	// Growth
	fs.IntVar(&c.Steps, "steps", def.Steps, fmt.Sprintf("expansion steps [%d]", def.Steps))
	fs.IntVar(&c.Steps, "n", def.Steps, "alias of --steps")
	fs.StringVar(&c.Method, "method", def.Method, "growth method: naive | tally")

	// Output
	fs.StringVar(&c.Output, "output", "text", "output: text | json [text]")
	fs.StringVar(&c.Output, "o", "text", "alias of --output")

	// Misc
	fs.BoolVar(&c.Trace, "trace", false, "log chain length after each step [false]")
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
}

// AfterParse applies a positional input path (globs expanded), then runs validation.
func AfterParse(c *Common, posArgs []string) error {
	posArgs, err := cliutil.ExpandInputs(posArgs)
	if err != nil {
		return err
	}
	switch len(posArgs) {
	case 0:
	case 1:
		c.Input = posArgs[0]
	default:
		return fmt.Errorf("expected at most one input file, got %d", len(posArgs))
	}
	return Validate(c)
}

// Validate applies CLI invariants.
func Validate(c *Common) error {
	if c.Input == "" {
		return errors.New("--input must not be empty")
	}
	if c.Steps < 0 {
		return errors.New("--steps must be ≥ 0")
	}
	switch c.Method {
	case MethodNaive, MethodTally:
	default:
		return fmt.Errorf("invalid --method %q", c.Method)
	}
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	return nil
}
