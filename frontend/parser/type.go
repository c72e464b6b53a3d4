package parser

import (
	"github.com/Tamagosushio/esperopp/frontend/ast"
	"github.com/Tamagosushio/esperopp/frontend/common"
	"github.com/Tamagosushio/esperopp/frontend/lexer"
)

// parseType accepts one of the primitive type keywords. A bare `funkcia`
// stands alone as a function type without parameter/return components.
func (p *Parser) parseType() (*ast.Type, *diagnostic) {
	if kw, ok := p.tok.(lexer.TokKeyword); ok && kw.Keyword.IsTypeKeyword() {
		p.advance()
		switch kw.Keyword {
		case lexer.KwEntjera:
			return ast.NewType(ast.TypeEntjera), nil
		case lexer.KwReala:
			return ast.NewType(ast.TypeReala), nil
		case lexer.KwTeksta:
			return ast.NewType(ast.TypeTeksta), nil
		case lexer.KwBulea:
			return ast.NewType(ast.TypeBulea), nil
		case lexer.KwFunkcia:
			return ast.NewType(ast.TypeFunkcia), nil
		}
	}
	return nil, common.ErrorDiag("expected type", p.span())
}
