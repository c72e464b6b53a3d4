package peekable

import "testing"

func TestCharsNextAndPeek(t *testing.T) {
	p := NewPeekableChars("ab")

	if c := p.Peek(); c == nil || *c != 'a' {
		t.Fatal("peek wrong")
	}
	if c := p.Next(); c == nil || *c != 'a' {
		t.Fatal("next wrong")
	}
	if c := p.Peek(); c == nil || *c != 'b' {
		t.Fatal("peek after next wrong")
	}
	if c := p.Next(); c == nil || *c != 'b' {
		t.Fatal("second next wrong")
	}
	if p.Peek() != nil || p.Next() != nil {
		t.Fatal("expected nil at end of input")
	}
}

func TestCharsMultibyteRunes(t *testing.T) {
	p := NewPeekableChars("ĉu")
	if c := p.Next(); c == nil || *c != 'ĉ' {
		t.Fatal("multibyte rune wrong")
	}
	if c := p.Next(); c == nil || *c != 'u' {
		t.Fatal("rune after multibyte wrong")
	}
	if p.Next() != nil {
		t.Fatal("expected nil at end of input")
	}
}
