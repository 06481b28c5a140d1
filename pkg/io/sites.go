package io

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/matzehuels/fibernet/pkg/geom"
	"github.com/matzehuels/fibernet/pkg/site"
)

// maxLineSize bounds a single input line. A site of 250 probes in a
// 10000x10000 area needs under 3 KiB.
const maxLineSize = 1 << 20

// ParseError describes a coordinate pair that could not be parsed.
type ParseError struct {
	Line   int    // 1-based input line
	Column int    // 1-based byte offset of the token
	Token  string // offending token
	Err    error  // underlying cause
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: invalid probe %q: %v", e.Line, e.Column, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	// ErrMissingComma is returned for a token without an "x,y" separator.
	ErrMissingComma = errors.New("io: expected x,y")
	// ErrBadCoordinate is returned for a coordinate that is not an integer.
	ErrBadCoordinate = errors.New("io: coordinate is not an integer")
)

// ReadSites reads one site per non-blank line of r.
//
// Malformed tokens do not abort reading. The returned collection holds every
// site seen, each truncated at its first bad token, and the error joins one
// [*ParseError] per affected line. Callers that only care about hard failures
// can test with errors.As for *ParseError. A read failure returns a nil
// collection.
func ReadSites(r io.Reader) (*site.Collection, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	c := site.NewCollection()
	var errs []error
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		s, err := parseLine(text, line)
		c.Add(s)
		if err != nil {
			errs = append(errs, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", line+1, err)
	}
	return c, errors.Join(errs...)
}

// ImportSites reads the sites file at path. See [ReadSites].
func ImportSites(path string) (*site.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadSites(f)
}

// ParseSites reads sites from an in-memory string. See [ReadSites].
func ParseSites(s string) (*site.Collection, error) {
	return ReadSites(strings.NewReader(s))
}

func parseLine(text string, line int) (*site.Site, error) {
	s := site.New()
	for _, tok := range tokenize(text) {
		p, err := parsePoint(tok.text)
		if err != nil {
			return s, &ParseError{Line: line, Column: tok.col, Token: tok.text, Err: err}
		}
		s.AddProbe(p.X, p.Y)
	}
	return s, nil
}

type token struct {
	text string
	col  int
}

func tokenize(text string) []token {
	var toks []token
	start := -1
	for i, r := range text {
		switch {
		case unicode.IsSpace(r) && start >= 0:
			toks = append(toks, token{text: text[start:i], col: start + 1})
			start = -1
		case !unicode.IsSpace(r) && start < 0:
			start = i
		}
	}
	if start >= 0 {
		toks = append(toks, token{text: text[start:], col: start + 1})
	}
	return toks
}

func parsePoint(tok string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(tok, ",")
	if !ok {
		return geom.Point{}, ErrMissingComma
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return geom.Point{}, fmt.Errorf("%w: x=%q", ErrBadCoordinate, xs)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return geom.Point{}, fmt.Errorf("%w: y=%q", ErrBadCoordinate, ys)
	}
	return geom.Point{X: x, Y: y}, nil
}
