// Package parser implements the recursive-descent parser: an immutable token
// stream, a single forward-only cursor, and result-value failures. The first
// unmet expectation propagates straight out of Parse; no partial tree is
// returned and no recovery is attempted.
package parser

import (
	"fmt"

	"github.com/Tamagosushio/esperopp/frontend/ast"
	"github.com/Tamagosushio/esperopp/frontend/common"
	"github.com/Tamagosushio/esperopp/frontend/lexer"
	protocol "github.com/gluax-lang/lsp"
)

type diagnostic = protocol.Diagnostic

type Span = common.Span

var SpanFrom = common.SpanFrom

type Parser struct {
	tokenStream []lexer.Token
	tok         lexer.Token
	pos         uint32
}

// New creates a parser over tokens. The stream must be non-empty and end
// with TokEOF, which is what Lex always produces.
func New(tokens []lexer.Token) *Parser {
	return &Parser{
		tokenStream: tokens,
		tok:         tokens[0],
		pos:         0,
	}
}

// Parse consumes tokens as a convenience wrapper around New and Parse.
func Parse(tokens []lexer.Token) (*ast.Program, *diagnostic) {
	return New(tokens).Parse()
}

func (p *Parser) Parse() (*ast.Program, *diagnostic) {
	program := &ast.Program{}
	for !lexer.IsEOF(p.tok) {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		program.Stmts = append(program.Stmts, stmt)
	}
	return program, nil
}

// CurrentPos returns the cursor position, for error reporting by the caller.
func (p *Parser) CurrentPos() uint32 {
	return p.pos
}

// CurrentToken returns the token at the cursor, for error reporting by the
// caller. After a failed Parse this is the token that violated an
// expectation.
func (p *Parser) CurrentToken() lexer.Token {
	return p.tok
}

// advance moves the parser forward by one token, clamping at the EOF token.
func (p *Parser) advance() {
	p.pos = min(p.pos+1, uint32(len(p.tokenStream)-1))
	p.tok = p.tokenStream[p.pos]
}

func (p *Parser) tryConsume(s string) bool {
	if p.tok.Is(s) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(s string) *diagnostic {
	if !p.tryConsume(s) {
		return common.ErrorDiag(fmt.Sprintf("expected: %s", s), p.span())
	}
	return nil
}

func (p *Parser) expectIdentMsg(msg string) (lexer.TokIdent, *diagnostic) {
	if lexer.IsIdent(p.tok) {
		ident := p.tok.(lexer.TokIdent)
		p.advance()
		return ident, nil
	}
	return lexer.TokIdent{}, common.ErrorDiag(fmt.Sprintf("%s, got: %s", msg, p.tok.String()), p.tok.Span())
}

func (p *Parser) span() common.Span {
	return p.tok.Span()
}

func (p *Parser) prevSpan() common.Span {
	if p.pos == 0 {
		return p.tok.Span()
	}
	return p.tokenStream[p.pos-1].Span()
}
