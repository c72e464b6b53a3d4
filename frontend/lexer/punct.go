package lexer

import "github.com/Tamagosushio/esperopp/frontend/common"

// Punct represents a punctuation token.
type Punct int

const (
	_ Punct = iota

	// PunctPlus is `+`
	PunctPlus
	// PunctMinus is `-`
	PunctMinus
	// PunctAsterisk is `*`
	PunctAsterisk
	// PunctSlash is `/`
	PunctSlash
	// PunctEqual is `=`
	PunctEqual
	// PunctEqualEqual is `==`
	PunctEqualEqual
	// PunctNotEqual is `!=`
	PunctNotEqual
	// PunctLessThan is `<`
	PunctLessThan
	// PunctLessThanEqual is `<=`
	PunctLessThanEqual
	// PunctGreaterThan is `>`
	PunctGreaterThan
	// PunctGreaterThanEqual is `>=`
	PunctGreaterThanEqual
	// PunctOpenParen is `(`
	PunctOpenParen
	// PunctCloseParen is `)`
	PunctCloseParen
	// PunctOpenBrace is `{`
	PunctOpenBrace
	// PunctCloseBrace is `}`
	PunctCloseBrace
	// PunctSemicolon is `;`
	PunctSemicolon
	// PunctComma is `,`
	PunctComma
	// PunctAt is `@`
	PunctAt
	// PunctDot is `.`
	PunctDot
)

var puncts = map[string]Punct{
	"+":  PunctPlus,
	"-":  PunctMinus,
	"*":  PunctAsterisk,
	"/":  PunctSlash,
	"=":  PunctEqual,
	"==": PunctEqualEqual,
	"!=": PunctNotEqual,
	"<":  PunctLessThan,
	"<=": PunctLessThanEqual,
	">":  PunctGreaterThan,
	">=": PunctGreaterThanEqual,
	"(":  PunctOpenParen,
	")":  PunctCloseParen,
	"{":  PunctOpenBrace,
	"}":  PunctCloseBrace,
	";":  PunctSemicolon,
	",":  PunctComma,
	"@":  PunctAt,
	".":  PunctDot,
}

var punctNames = func() []string {
	// find the largest enum value so the slice is the right length
	var max Punct
	for _, p := range puncts {
		if p > max {
			max = p
		}
	}
	names := make([]string, max+1)
	for lit, p := range puncts {
		names[p] = lit
	}
	return names
}()

// punctKinds are the token-type names used in token dumps.
var punctKinds = map[Punct]string{
	PunctPlus:             "Plus",
	PunctMinus:            "Minus",
	PunctAsterisk:         "Multiply",
	PunctSlash:            "Divide",
	PunctEqual:            "Assign",
	PunctEqualEqual:       "Equal",
	PunctNotEqual:         "NotEqual",
	PunctLessThan:         "Less",
	PunctLessThanEqual:    "LessEqual",
	PunctGreaterThan:      "Greater",
	PunctGreaterThanEqual: "GreaterEqual",
	PunctOpenParen:        "LParen",
	PunctCloseParen:       "RParen",
	PunctOpenBrace:        "LBrace",
	PunctCloseBrace:       "RBrace",
	PunctSemicolon:        "Semicolon",
	PunctComma:            "Comma",
	PunctAt:               "At",
	PunctDot:              "Dot",
}

type TokPunct struct {
	Punct Punct
	span  common.Span
}

func (t TokPunct) isToken() {}

func (t TokPunct) Span() common.Span {
	return t.span
}

func (t TokPunct) String() string {
	return punctNames[t.Punct]
}

func (t TokPunct) Is(other string) bool {
	return puncts[other] == t.Punct
}

func (t TokPunct) AsString() string {
	return t.String()
}

func (t TokPunct) Kind() string {
	return punctKinds[t.Punct]
}

func newTokPunct(p Punct, span common.Span) TokPunct {
	return TokPunct{Punct: p, span: span}
}

/* Lexing */

// twoCharPuncts are the operators whose first character commits to a
// two-character form when the right character follows: `==`, `!=`, `<=`, `>=`.
// A lone `=`, `<` or `>` stays a single-character punct; a lone `!` has no
// punct form at all and falls through to an Unknown token.
func (lx *lexer) punct(c *rune) Token {
	switch *c {
	case '=', '<', '>':
		lit := string(*c)
		lx.advance()
		if isChr(lx.curChr, '=') {
			lit += "="
			lx.advance()
		}
		return newTokPunct(puncts[lit], lx.currentSpan())
	case '!':
		if isChr(lx.peek(), '=') {
			lx.advance() // '!'
			lx.advance() // '='
			return newTokPunct(PunctNotEqual, lx.currentSpan())
		}
		return nil
	}
	if p, ok := puncts[string(*c)]; ok {
		lx.advance()
		return newTokPunct(p, lx.currentSpan())
	}
	return nil
}
