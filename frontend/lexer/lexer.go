package lexer

import (
	"github.com/Tamagosushio/esperopp/frontend/common"
	"github.com/Tamagosushio/esperopp/frontend/lexer/peekable"
)

// lexer is a hand-rolled, rune-based scanner.
type lexer struct {
	src                    string // source is the file being scanned
	chars                  *peekable.Chars
	curChr                 *rune
	line, column           uint32
	savedLine, savedColumn uint32
}

// Lex scans the whole of code eagerly and returns the complete token stream.
// It never fails: characters with no token form become Unknown tokens, and
// the stream always ends with exactly one TokEOF positioned at the final
// line/column reached.
func Lex(src, code string) []Token {
	var tokens []Token
	lx := newLexer(src, code)
	for {
		tok := lx.nextToken()
		tokens = append(tokens, tok)
		if _, ok := tok.(TokEOF); ok {
			break
		}
	}
	return tokens
}

// newLexer returns a fresh lexer initialised with src.
func newLexer(src, code string) *lexer {
	chars := peekable.NewPeekableChars(code)
	lx := &lexer{
		src:    src,
		chars:  chars,
		curChr: chars.Next(),
		line:   1, column: 0,
	}
	return lx
}

func (lx *lexer) currentSpan() common.Span {
	span := common.SpanNew(lx.savedLine, lx.line, lx.savedColumn, lx.column)
	span.Source = lx.src
	return span
}

func (lx *lexer) advance() {
	c := lx.curChr
	if c != nil {
		if *c == '\n' {
			lx.line++
			lx.column = 0
		} else {
			lx.column++
		}
	}
	lx.curChr = lx.chars.Next()
}

func (lx *lexer) peek() *rune {
	return lx.chars.Peek()
}

// skipWs skips whitespaces to the next non-whitespace character.
func (lx *lexer) skipWs() {
	for {
		c := lx.curChr
		if !isWsChr(c) {
			break
		}
		lx.advance() // skip
	}
	lx.savedLine = lx.line
	lx.savedColumn = lx.column
}

func (lx *lexer) nextToken() Token {
	lx.skipWs() // skip whitespaces

	c := lx.curChr

	// EOF
	if c == nil {
		return TokEOF{span: lx.currentSpan()}
	}

	// Comment
	if *c == '/' && isChr(lx.peek(), '/') {
		lx.comment()
		return lx.nextToken()
	}

	// Number
	if isAsciiDigit(c) {
		return lx.number()
	}

	// String
	if *c == '"' {
		return lx.string()
	}

	// Identifier / keyword
	if isIdentStart(*c) {
		identTok := lx.identifier()
		if keyword, ok := lookupKeyword(identTok.Raw); ok {
			return newTokKeyword(keyword, identTok.Span())
		}
		return identTok
	}

	// Punctuation
	if token := lx.punct(c); token != nil {
		return token
	}

	// Anything else is carried through as an Unknown token.
	return lx.unknown()
}

func isChr(c *rune, e rune) bool {
	return c != nil && *c == e
}

func isWsChr(c *rune) bool {
	if c == nil {
		return false
	}
	switch *c {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	default:
		return false
	}
}

func isAsciiDigit(c *rune) bool {
	return c != nil && '0' <= *c && *c <= '9'
}
