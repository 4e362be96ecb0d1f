// core/polymer/loader.go
package polymer

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// RuleSep separates a pair from its insertion element on a rule line.
const RuleSep = " -> "

// Load parses a template/rules document:
//
//	NNCB
//
//	CH -> B
//	HH -> N
//
// Line 1 is the chain, line 2 must be blank, every following line is a rule.
// Blank lines are accepted only after the last rule.
func Load(r io.Reader) (*Polymerizer, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 16 * 1024 * 1024 // long templates fit on one line
	sc.Buffer(make([]byte, 64*1024), maxLine)

	ln := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		ln++
		return strings.TrimRight(sc.Text(), " \t\r"), true
	}

	chain, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		return nil, &FormatError{Line: 1, Reason: "missing chain"}
	}
	chain = strings.TrimSpace(chain)
	if chain == "" {
		return nil, &FormatError{Line: 1, Reason: "empty chain"}
	}

	if sep, ok := next(); ok && sep != "" {
		return nil, &FormatError{Line: ln, Text: sep, Reason: "expected blank line after chain"}
	}

	rules := Rules{}
	blank := 0 // line of a blank seen after the rules started; only trailing blanks are allowed
	for {
		line, ok := next()
		if !ok {
			break
		}
		if line == "" {
			if blank == 0 {
				blank = ln
			}
			continue
		}
		if blank != 0 {
			return nil, &FormatError{Line: blank, Reason: "blank line between rules"}
		}
		p, ins, err := parseRule(line)
		if err != nil {
			err.Line = ln
			return nil, err
		}
		if _, dup := rules[p]; dup {
			return nil, &FormatError{Line: ln, Text: line, Reason: "duplicate rule for " + p.String()}
		}
		rules[p] = ins
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return New(chain, rules), nil
}

// parseRule splits "XY -> Z". Lengths are counted in characters, not bytes.
func parseRule(line string) (Pair, rune, *FormatError) {
	lhs, rhs, found := strings.Cut(line, RuleSep)
	if !found {
		return Pair{}, 0, &FormatError{Text: line, Reason: "rule missing \"" + RuleSep + "\""}
	}
	key := []rune(lhs)
	val := []rune(strings.TrimSpace(rhs))
	if len(key) != 2 {
		return Pair{}, 0, &FormatError{Text: line, Reason: "rule pair must be 2 characters"}
	}
	if len(val) != 1 {
		return Pair{}, 0, &FormatError{Text: line, Reason: "rule insertion must be 1 character"}
	}
	return Pair{key[0], key[1]}, val[0], nil
}

// LoadFile reads path completely ("-" = stdin, gzip detected) and then parses it.
// The input is never seeked, so pipes and FIFOs work.
func LoadFile(path string) (*Polymerizer, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	data, err := io.ReadAll(in)
	cerr := in.Close()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if cerr != nil {
		return nil, fmt.Errorf("close %s: %w", path, cerr)
	}

	p, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

var gzipMagic = []byte{0x1f, 0x8b}

// input is an opened template file, optionally gunzipped on the fly.
type input struct {
	io.Reader
	gz  *gzip.Reader
	fh  *os.File
	own bool // false for stdin, which stays open
}

func (in *input) Close() error {
	var err error
	if in.gz != nil {
		err = in.gz.Close()
	}
	if in.own {
		if cerr := in.fh.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// openInput sniffs the gzip magic with a buffered peek instead of a seek.
func openInput(path string) (*input, error) {
	in := &input{fh: os.Stdin}
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		in.fh, in.own = fh, true
	}
	br := bufio.NewReader(in.fh)
	in.Reader = br

	magic, _ := br.Peek(len(gzipMagic)) // short or empty input is simply not gzip
	if bytes.Equal(magic, gzipMagic) || strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(br)
		if err != nil {
			_ = in.Close()
			return nil, err
		}
		in.Reader, in.gz = gz, gz
	}
	return in, nil
}
