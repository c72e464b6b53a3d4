package lexer

import (
	"strings"

	"github.com/Tamagosushio/esperopp/frontend/common"
)

// TokString represents a string token. Raw holds the literal's value with
// escape sequences already resolved.
type TokString struct {
	Raw  string
	span common.Span
}

func (t TokString) isToken() {}

func (t TokString) Span() common.Span {
	return t.span
}

func (t TokString) String() string {
	return t.Raw
}

func (t TokString) Is(_ string) bool {
	return false
}

func (t TokString) AsString() string {
	return ""
}

func (t TokString) Kind() string {
	return "String"
}

func NewTokString(s string, span common.Span) TokString {
	return TokString{Raw: s, span: span}
}

/* Lexing */

// string reads a `"`-delimited literal. An unterminated literal simply runs
// to end of input; the lexer never fails. Recognised escapes are \n, \t, \\
// and \"; any other escaped character is copied through unchanged.
func (lx *lexer) string() Token {
	lx.advance() // consume the opening '"'

	var sb strings.Builder

	for lx.curChr != nil && *lx.curChr != '"' {
		if *lx.curChr == '\\' {
			lx.advance() // consume '\'
			if lx.curChr == nil {
				break
			}
			switch *lx.curChr {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			default:
				sb.WriteRune(*lx.curChr)
			}
		} else {
			sb.WriteRune(*lx.curChr)
		}
		lx.advance()
	}

	if isChr(lx.curChr, '"') {
		lx.advance() // consume the closing '"'
	}

	return NewTokString(sb.String(), lx.currentSpan())
}
