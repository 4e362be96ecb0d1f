// core/polymer/loader_test.go
package polymer

import (
	"compress/gzip"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadParsesChainAndRules(t *testing.T) {
	p, err := Load(strings.NewReader("NNCB\n\nCH -> B\nHH -> N\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Chain() != "NNCB" {
		t.Errorf("chain %q", p.Chain())
	}
	r := p.Rules()
	if len(r) != 2 || r[Pair{'C', 'H'}] != 'B' || r[Pair{'H', 'H'}] != 'N' {
		t.Errorf("rules %v", r)
	}
}

func TestLoadCRLFAndTrailingBlank(t *testing.T) {
	p, err := Load(strings.NewReader("NNCB\r\n\r\nCH -> B\r\n\r\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Chain() != "NNCB" || p.Rules()[Pair{'C', 'H'}] != 'B' {
		t.Fatalf("got chain %q rules %v", p.Chain(), p.Rules())
	}
}

func TestLoadTrailingBlanks(t *testing.T) {
	p, err := Load(strings.NewReader("NNCB\n\nCH -> B\nHH -> N\n\n\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(p.Rules()) != 2 {
		t.Fatalf("rules %v", p.Rules())
	}
}

func TestLoadMultiByteRules(t *testing.T) {
	p, err := Load(strings.NewReader("ÄB\n\nÄB -> Ç\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := p.Rules()[Pair{'Ä', 'B'}]; got != 'Ç' {
		t.Fatalf("rule ÄB -> %q", got)
	}
	p.ApplyRules()
	if p.Chain() != "ÄÇB" {
		t.Fatalf("chain %q", p.Chain())
	}

	// still one character each, so multi-character rules stay rejected
	if _, err := Load(strings.NewReader("ÄB\n\nÄBÖ -> C\n")); !errors.Is(err, ErrFormat) {
		t.Fatalf("want ErrFormat for 3-character pair, got %v", err)
	}
}

func TestLoadChainOnly(t *testing.T) {
	p, err := Load(strings.NewReader("NNCB\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(p.Rules()) != 0 {
		t.Fatalf("expected no rules, got %v", p.Rules())
	}
}

func TestLoadFormatErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		line int
	}{
		{"empty input", "", 1},
		{"blank chain", "\n\nCH -> B\n", 1},
		{"missing separator line", "NNCB\nCH -> B\n", 2},
		{"missing arrow", "NNCB\n\nCH -> B\nHH N\n", 4},
		{"arrow without spaces", "NNCB\n\nCH->B\n", 3},
		{"long pair", "NNCB\n\nCHH -> B\n", 3},
		{"long insertion", "NNCB\n\nCH -> BB\n", 3},
		{"empty insertion", "NNCB\n\nCH -> \n", 3},
		{"duplicate", "NNCB\n\nCH -> B\nCH -> N\n", 4},
		{"blank between rules", "NNCB\n\nCH -> B\n\nHH -> N\n", 4},
		{"blanks between rules", "NNCB\n\nCH -> B\n\n\nHH -> N\n", 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(c.in))
			if !errors.Is(err, ErrFormat) {
				t.Fatalf("want ErrFormat, got %v", err)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("want *FormatError, got %T", err)
			}
			if fe.Line != c.line {
				t.Errorf("line %d want %d (%v)", fe.Line, c.line, err)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("want fs.ErrNotExist, got %v", err)
	}
}

func TestLoadFileFormatErrorNamesPath(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(fn, []byte("NNCB\n\nCH B\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadFile(fn)
	if !errors.Is(err, ErrFormat) || !strings.Contains(err.Error(), fn) {
		t.Fatalf("got %v", err)
	}
}

func TestLoadFileGzip(t *testing.T) {
	raw, err := os.ReadFile("testdata/fixture.txt")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	fn := filepath.Join(t.TempDir(), "fixture.txt.gz")
	fh, err := os.Create(fn)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write(raw); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	gw.Close()
	fh.Close()

	p, err := LoadFile(fn)
	if err != nil {
		t.Fatalf("LoadFile gz: %v", err)
	}
	if p.Chain() != "NNCB" || len(p.Rules()) != 16 {
		t.Fatalf("gz parse: chain %q, %d rules", p.Chain(), len(p.Rules()))
	}
}
