package writers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Downstream consumers (like `head`) may close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// FlushExit flushes w and maps the outcome to an exit code: 0 on success or
// broken pipe, 3 on any other write failure (reported on stderr).
func FlushExit(w *bufio.Writer, stderr io.Writer) int {
	err := w.Flush()
	if err == nil || IsBrokenPipe(err) {
		return 0
	}
	_, _ = fmt.Fprintln(stderr, err)
	return 3
}
