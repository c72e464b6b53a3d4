package lexer

import "github.com/Tamagosushio/esperopp/frontend/common"

// TokUnknown carries a character with no recognised token form. Unknown
// characters are not lexing errors; the parser rejects them if they ever
// reach an expression position.
type TokUnknown struct {
	Raw  string
	span common.Span
}

func (t TokUnknown) isToken() {}

func (t TokUnknown) Span() common.Span {
	return t.span
}

func (t TokUnknown) String() string {
	return t.Raw
}

func (t TokUnknown) Is(_ string) bool {
	return false
}

func (t TokUnknown) AsString() string {
	return ""
}

func (t TokUnknown) Kind() string {
	return "Unknown"
}

/* Lexing */

func (lx *lexer) unknown() Token {
	raw := string(*lx.curChr)
	lx.advance()
	return TokUnknown{Raw: raw, span: lx.currentSpan()}
}
