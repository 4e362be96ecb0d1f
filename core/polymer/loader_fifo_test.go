//go:build linux || darwin

// core/polymer/loader_fifo_test.go
package polymer

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

// A FIFO cannot seek; the gzip sniff must still work.
func TestLoadFileFIFO(t *testing.T) {
	raw, err := os.ReadFile("testdata/fixture.txt")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	for _, gz := range []bool{false, true} {
		fn := filepath.Join(t.TempDir(), "in.fifo")
		if err := syscall.Mkfifo(fn, 0o600); err != nil {
			t.Skipf("mkfifo: %v", err)
		}

		done := make(chan error, 1)
		go func() {
			fh, err := os.OpenFile(fn, os.O_WRONLY, 0)
			if err != nil {
				done <- err
				return
			}
			if gz {
				gw := gzip.NewWriter(fh)
				_, err = gw.Write(raw)
				if cerr := gw.Close(); err == nil {
					err = cerr
				}
			} else {
				_, err = fh.Write(raw)
			}
			if cerr := fh.Close(); err == nil {
				err = cerr
			}
			done <- err
		}()

		p, err := LoadFile(fn)
		if werr := <-done; werr != nil {
			t.Fatalf("gz=%v: writer: %v", gz, werr)
		}
		if err != nil {
			t.Fatalf("gz=%v: LoadFile: %v", gz, err)
		}
		if p.Chain() != "NNCB" || len(p.Rules()) != 16 {
			t.Fatalf("gz=%v: chain %q, %d rules", gz, p.Chain(), len(p.Rules()))
		}
	}
}
