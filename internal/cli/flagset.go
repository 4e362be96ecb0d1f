package cli

import (
	"flag"
	"fmt"
	"io"

	"polymer/internal/clibase"
)

// NewFlagSet returns a ContinueOnError FlagSet with the polymer help text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, _ func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] [input]\n", name)
		_, _ = fmt.Fprintln(out, "\nInput format:")
		_, _ = fmt.Fprintln(out, "  line 1   template chain, e.g. NNCB")
		_, _ = fmt.Fprintln(out, "  line 2   blank")
		_, _ = fmt.Fprintln(out, "  line 3+  insertion rules, e.g. CH -> B")
	})
	return fs
}
