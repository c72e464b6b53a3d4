// Package peekable provides a peekable rune iterator over a string.
package peekable

import (
	"unicode/utf8"
)

// Chars is a peekable iterator over the runes of a string.
type Chars struct {
	input string
	pos   int
}

// NewPeekableChars creates a new Chars iterator over s.
func NewPeekableChars(s string) *Chars {
	return &Chars{input: s}
}

// Peek returns a copy of the next rune without consuming it.
// It returns nil if there is no next rune.
func (p *Chars) Peek() *rune {
	if p.pos >= len(p.input) {
		return nil
	}
	r, _ := utf8.DecodeRuneInString(p.input[p.pos:])
	return &r
}

// Next consumes and returns a copy of the next rune.
// It returns nil if there is no next rune.
func (p *Chars) Next() *rune {
	if p.pos >= len(p.input) {
		return nil
	}
	r, w := utf8.DecodeRuneInString(p.input[p.pos:])
	p.pos += w
	return &r
}
