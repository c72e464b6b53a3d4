package parser

import (
	"github.com/Tamagosushio/esperopp/frontend/ast"
	"github.com/Tamagosushio/esperopp/frontend/lexer"
)

func (p *Parser) parseStmt() (ast.Stmt, *diagnostic) {
	// a leading type keyword starts a variable declaration
	if kw, ok := p.tok.(lexer.TokKeyword); ok && kw.Keyword.IsTypeKeyword() {
		return p.parseVarDecl()
	}

	switch p.tok.AsString() {
	case "funkcio":
		return p.parseFuncDecl()
	case "reveni":
		return p.parseReturn()
	case "se":
		return p.parseIf()
	case "dum":
		return p.parseWhile()
	default:
		return p.parseAssignmentOrExprStmt()
	}
}

// parseBody parses statements until the matching `}` is consumed.
func (p *Parser) parseBody() ([]ast.Stmt, *diagnostic) {
	var stmts []ast.Stmt
	for !p.tryConsume("}") {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// parseVarDecl parses: Type identifier [`=` expression] `;`
func (p *Parser) parseVarDecl() (ast.Stmt, *diagnostic) {
	spanStart := p.span()

	ty, err := p.parseType()
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdentMsg("expected variable name")
	if err != nil {
		return nil, err
	}

	var init *ast.Expr
	if p.tryConsume("=") {
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		init = &value
	}

	if err := p.expect(";"); err != nil {
		return nil, err
	}

	span := SpanFrom(spanStart, p.prevSpan())
	return ast.NewVarDeclStmt(name.Raw, ty, init, span), nil
}

// parseFuncDecl parses:
// `funkcio` identifier `(` Type identifier `)` Type `{` statement* `}`
func (p *Parser) parseFuncDecl() (ast.Stmt, *diagnostic) {
	spanStart := p.span()
	p.advance() // consume 'funkcio'

	name, err := p.expectIdentMsg("expected function name")
	if err != nil {
		return nil, err
	}
	if err := p.expect("("); err != nil {
		return nil, err
	}
	paramType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	paramName, err := p.expectIdentMsg("expected parameter name")
	if err != nil {
		return nil, err
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	returnType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err := p.expect("{"); err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	span := SpanFrom(spanStart, p.prevSpan())
	return ast.NewFuncDeclStmt(name.Raw, paramName.Raw, paramType, returnType, body, span), nil
}

// parseReturn parses: `reveni` expression `;`
func (p *Parser) parseReturn() (ast.Stmt, *diagnostic) {
	spanStart := p.span()
	p.advance() // consume 'reveni'

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}

	span := SpanFrom(spanStart, p.prevSpan())
	return ast.NewReturnStmt(value, span), nil
}

// parseIf parses:
// `se` `(` expression `)` `{` statement* `}` [`alie` `{` statement* `}`]
func (p *Parser) parseIf() (ast.Stmt, *diagnostic) {
	spanStart := p.span()
	p.advance() // consume 'se'

	if err := p.expect("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	if err := p.expect("{"); err != nil {
		return nil, err
	}
	thenBody, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	var elseBody []ast.Stmt
	if p.tryConsume("alie") {
		if err := p.expect("{"); err != nil {
			return nil, err
		}
		elseBody, err = p.parseBody()
		if err != nil {
			return nil, err
		}
	}

	span := SpanFrom(spanStart, p.prevSpan())
	return ast.NewIfStmt(cond, thenBody, elseBody, span), nil
}

// parseWhile parses: `dum` `(` expression `)` `{` statement* `}`
func (p *Parser) parseWhile() (ast.Stmt, *diagnostic) {
	spanStart := p.span()
	p.advance() // consume 'dum'

	if err := p.expect("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	if err := p.expect("{"); err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	span := SpanFrom(spanStart, p.prevSpan())
	return ast.NewWhileStmt(cond, body, span), nil
}

// parseAssignmentOrExprStmt parses an expression statement, turning it into
// an assignment only when the expression is exactly a bare variable
// reference followed by `=`.
func (p *Parser) parseAssignmentOrExprStmt() (ast.Stmt, *diagnostic) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if expr.Kind() == ast.ExprKindVarRef && p.tok.Is("=") {
		p.advance() // consume '='
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(";"); err != nil {
			return nil, err
		}
		span := SpanFrom(expr.Span(), p.prevSpan())
		return ast.NewAssignStmt(expr.VarRef().Name, value, span), nil
	}

	if err := p.expect(";"); err != nil {
		return nil, err
	}
	span := SpanFrom(expr.Span(), p.prevSpan())
	return ast.NewExprStmt(expr, span), nil
}
