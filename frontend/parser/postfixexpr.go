package parser

import (
	"github.com/Tamagosushio/esperopp/frontend/ast"
)

// parsePostfixExpr parses a primary expression and any number of call or
// member-access suffixes, applied left to right.
func (p *Parser) parsePostfixExpr() (ast.Expr, *diagnostic) {
	expr, err := p.parsePrimaryExpr()
	if err != nil {
		return ast.Expr{}, err
	}

	for {
		spanStart := expr.Span()
		switch {
		case p.tryConsume("("):
			// call; the argument is a single expression, not a list
			arg, err := p.parseExpr()
			if err != nil {
				return ast.Expr{}, err
			}
			if err := p.expect(")"); err != nil {
				return ast.Expr{}, err
			}
			expr = ast.NewCallExpr(expr, arg, SpanFrom(spanStart, p.prevSpan()))
		case p.tryConsume("."):
			member, err := p.expectIdentMsg("expected member name")
			if err != nil {
				return ast.Expr{}, err
			}
			expr = ast.NewMemberAccessExpr(expr, member.Raw, SpanFrom(spanStart, p.prevSpan()))
		default:
			// nothing postfix-y ahead -> done
			return expr, nil
		}
	}
}
