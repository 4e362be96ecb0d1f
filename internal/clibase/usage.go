// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"polymer/internal/version"
)

// UsageCommon installs the Usage() handler on fs.
// extra prints tool-specific sections before the flag blocks.
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – pair-insertion polymer growth\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintf(out, "  -i, --input file            Template + rules file, '-' for STDIN, .gz ok [%s]\n", def("input"))
		fmt.Fprintln(out, "                              (also accepted as a single positional argument)")

		fmt.Fprintln(out, "\nGrowth:")
		fmt.Fprintf(out, "  -n, --steps int             Expansion steps [%s]\n", def("steps"))
		fmt.Fprintf(out, "      --method string         naive | tally [%s]\n", def("method"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json [%s]\n", def("output"))
		fmt.Fprintf(out, "      --trace                 Log chain length per step to STDERR [%s]\n", def("trace"))

		fmt.Fprintln(out, "\nEnvironment:")
		fmt.Fprintln(out, "  POLYMER_INPUT, POLYMER_STEPS, POLYMER_METHOD override the defaults above")

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Print quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
