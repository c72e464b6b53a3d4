package parser

import (
	"strconv"
	"strings"

	"github.com/Tamagosushio/esperopp/frontend/ast"
	"github.com/Tamagosushio/esperopp/frontend/common"
	"github.com/Tamagosushio/esperopp/frontend/lexer"
)

func (p *Parser) parseExpr() (ast.Expr, *diagnostic) {
	return p.parseBinaryExpr(0)
}

func (p *Parser) parsePrimaryExpr() (ast.Expr, *diagnostic) {
	switch v := p.tok.(type) {
	case lexer.TokNumber:
		p.advance() // consume number
		return p.numberExpr(v)
	case lexer.TokString:
		p.advance() // consume string
		return ast.NewStringExpr(v.Raw, v.Span()), nil
	case lexer.TokIdent:
		p.advance() // consume identifier
		return ast.NewVarRefExpr(v.Raw, v.Span()), nil
	}

	tok := p.tok
	switch tok.AsString() {
	case "vero":
		p.advance()
		return ast.NewBoolExpr(true, tok.Span()), nil
	case "malvero":
		p.advance()
		return ast.NewBoolExpr(false, tok.Span()), nil
	case "tiu":
		// the self keyword parses as an ordinary variable reference
		p.advance()
		return ast.NewVarRefExpr("tiu", tok.Span()), nil
	case "@":
		return p.parseAtFunctionExpr()
	case "(":
		p.advance() // consume '('
		expr, err := p.parseExpr()
		if err != nil {
			return ast.Expr{}, err
		}
		if err := p.expect(")"); err != nil {
			return ast.Expr{}, err
		}
		return expr, nil
	default:
		return ast.Expr{}, common.ErrorDiag("unexpected token in expression", tok.Span())
	}
}

// numberExpr builds a number literal from an already consumed token. The
// integer/real split is decided purely by the literal text: no `.` means
// integer, regardless of value.
func (p *Parser) numberExpr(tok lexer.TokNumber) (ast.Expr, *diagnostic) {
	value, err := strconv.ParseFloat(tok.Raw, 64)
	if err != nil {
		return ast.Expr{}, common.ErrorDiag("malformed number literal", tok.Span())
	}
	isInteger := !strings.Contains(tok.Raw, ".")
	return ast.NewNumberExpr(value, isInteger, tok.Span()), nil
}

// parseAtFunctionExpr parses an anonymous function literal:
// `@` `(` Type identifier `)` Type `{` statement* `}`
func (p *Parser) parseAtFunctionExpr() (ast.Expr, *diagnostic) {
	spanStart := p.span()
	p.advance() // consume '@'

	if err := p.expect("("); err != nil {
		return ast.Expr{}, err
	}
	paramType, err := p.parseType()
	if err != nil {
		return ast.Expr{}, err
	}
	paramName, err := p.expectIdentMsg("expected parameter name")
	if err != nil {
		return ast.Expr{}, err
	}
	if err := p.expect(")"); err != nil {
		return ast.Expr{}, err
	}
	returnType, err := p.parseType()
	if err != nil {
		return ast.Expr{}, err
	}

	if err := p.expect("{"); err != nil {
		return ast.Expr{}, err
	}
	body, err := p.parseBody()
	if err != nil {
		return ast.Expr{}, err
	}

	span := SpanFrom(spanStart, p.prevSpan())
	return ast.NewAtFunctionExpr(paramName.Raw, paramType, returnType, body, span), nil
}
