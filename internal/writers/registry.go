// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"polymer/internal/output"
)

// ResultWriter renders one finished run.
type ResultWriter func(w io.Writer, r output.Result) error

// ResultWriters maps an --output format to its handler.
var ResultWriters = map[string]ResultWriter{}

// RegisterResult is last-wins.
func RegisterResult(format string, fn ResultWriter) { ResultWriters[format] = fn }

// WriteResult dispatches on format.
func WriteResult(format string, w io.Writer, r output.Result) error {
	fn, ok := ResultWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, r)
}
