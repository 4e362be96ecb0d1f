// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

// WriteText prints the single answer line.
func WriteText(w io.Writer, r Result) error {
	_, err := fmt.Fprintf(w, AnswerLine, r.Answer)
	return err
}
