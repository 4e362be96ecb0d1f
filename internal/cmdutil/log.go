// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// numbers are grouped ("3,073") in trace output
var printer = message.NewPrinter(language.English)

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Tracef writes a progress line when enabled. Integer verbs are digit-grouped.
func Tracef(dst io.Writer, enabled bool, format string, a ...any) {
	if !enabled {
		return
	}
	_, _ = printer.Fprintf(dst, "TRACE: "+format+"\n", a...)
}
