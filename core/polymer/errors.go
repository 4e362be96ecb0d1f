// core/polymer/errors.go
package polymer

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat matches every *FormatError via errors.Is.
	ErrFormat = errors.New("malformed polymer input")
	// ErrEmptyChain is returned when statistics are requested for an empty chain.
	ErrEmptyChain = errors.New("empty chain")
)

// FormatError describes one rejected input line. Line is 1-based.
type FormatError struct {
	Line   int
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }
