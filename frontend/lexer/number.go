package lexer

import (
	"strings"

	"github.com/Tamagosushio/esperopp/frontend/common"
)

type TokNumber struct {
	Raw  string
	span common.Span
}

func (t TokNumber) isToken() {}

func (t TokNumber) Span() common.Span {
	return t.span
}

func (t TokNumber) String() string {
	return t.Raw
}

func (t TokNumber) Is(_ string) bool {
	return false
}

func (t TokNumber) AsString() string {
	return ""
}

func (t TokNumber) Kind() string {
	return "Number"
}

func newTokNumber(s string, span common.Span) TokNumber {
	return TokNumber{Raw: s, span: span}
}

/* Lexing */

// number reads a run of digits containing at most one `.`. A second `.`
// terminates the literal immediately and is left for the next token, so
// `1.2.3` lexes as Number("1.2"), Dot, Number("3").
func (lx *lexer) number() Token {
	var sb strings.Builder

	seenDot := false
	for c := lx.curChr; c != nil && (isAsciiDigit(c) || *c == '.'); c = lx.curChr {
		if *c == '.' {
			if seenDot {
				break
			}
			seenDot = true
		}
		sb.WriteRune(*c)
		lx.advance()
	}

	return newTokNumber(sb.String(), lx.currentSpan())
}
