package parser

import (
	"github.com/Tamagosushio/esperopp/frontend/ast"
)

// Every binary operator is left-associative; the grammar has no
// right-associative, unary or exponentiation operators.
func getBinaryOperatorPrecedence(op string) (int, ast.BinaryOp, bool) {
	switch op {
	// Comparison
	case "==":
		return 1, ast.BinaryOpEqual, true
	case "!=":
		return 1, ast.BinaryOpNotEqual, true
	case "<":
		return 1, ast.BinaryOpLess, true
	case ">":
		return 1, ast.BinaryOpGreater, true
	case "<=":
		return 1, ast.BinaryOpLessEqual, true
	case ">=":
		return 1, ast.BinaryOpGreaterEqual, true

	// Add / sub
	case "+":
		return 2, ast.BinaryOpAdd, true
	case "-":
		return 2, ast.BinaryOpSub, true

	// Mul / div
	case "*":
		return 3, ast.BinaryOpMul, true
	case "/":
		return 3, ast.BinaryOpDiv, true
	}

	return 0, ast.BinaryOpInvalid, false
}

func (p *Parser) parseBinaryExpr(minPrec int) (ast.Expr, *diagnostic) {
	left, err := p.parsePostfixExpr()
	if err != nil {
		return ast.Expr{}, err
	}

	for {
		prec, binOp, ok := getBinaryOperatorPrecedence(p.tok.AsString())
		if !ok || prec < minPrec {
			// Not an operator we care about, or lower precedence -> done.
			break
		}

		p.advance() // operator

		// left-associative: the right side binds only strictly tighter
		right, err := p.parseBinaryExpr(prec + 1)
		if err != nil {
			return ast.Expr{}, err
		}

		span := SpanFrom(left.Span(), right.Span())
		left = ast.NewBinaryExpr(left, binOp, right, span)
	}

	return left, nil
}
