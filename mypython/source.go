package mypython

import (
	"bufio"
	"io"
)

// eof is the terminal value returned by Peek and Next once the underlying
// reader is exhausted. It is a normal value, not an error.
const eof = rune(-1)

// Source is a sequential character stream with one-character lookahead.
// It reads bytes, not runes: the scanner works on a byte-oriented token set
// and treats anything outside ASCII as an unrecognized character.
type Source struct {
	r      *bufio.Reader
	line   int
	column int
}

// NewSource wraps r in a buffered character source positioned at line 1.
func NewSource(r io.Reader) *Source {
	return &Source{r: bufio.NewReader(r), line: 1}
}

// Peek returns the next character without consuming it, or eof.
func (s *Source) Peek() rune {
	b, err := s.r.Peek(1)
	if err != nil {
		return eof
	}
	return rune(b[0])
}

// Next consumes and returns the next character, or eof. Once eof is
// returned, every later call returns eof again.
func (s *Source) Next() rune {
	b, err := s.r.ReadByte()
	if err != nil {
		return eof
	}
	if b == '\n' {
		s.line++
		s.column = 0
	} else {
		s.column++
	}
	return rune(b)
}

// Pos reports the position of the most recently consumed character.
func (s *Source) Pos() Position {
	return Position{Line: s.line, Column: s.column}
}
