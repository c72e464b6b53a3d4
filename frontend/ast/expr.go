package ast

import (
	"github.com/Tamagosushio/esperopp/frontend/common"
)

type ExprKind uint8

const (
	_ ExprKind = iota
	ExprKindNumber
	ExprKindString
	ExprKindBool
	ExprKindVarRef
	ExprKindBinary
	ExprKindCall
	ExprKindAtFunction
	ExprKindMemberAccess
)

func (k ExprKind) String() string {
	switch k {
	case ExprKindNumber:
		return "number"
	case ExprKindString:
		return "string"
	case ExprKindBool:
		return "bool"
	case ExprKindVarRef:
		return "variable reference"
	case ExprKindBinary:
		return "binary"
	case ExprKindCall:
		return "call"
	case ExprKindAtFunction:
		return "at function"
	case ExprKindMemberAccess:
		return "member access"
	default:
		panic("unreachable")
	}
}

type exprData interface {
	ExprKind() ExprKind
	Span() common.Span
}

// Expr is one node of the closed expression family. The resolved type slot
// stays unset during parsing; a later type-checking pass is its only writer.
type Expr struct {
	data exprData
	ty   *Type
}

func NewExpr[T exprData](data T) Expr {
	return Expr{data: data}
}

func (e Expr) Kind() ExprKind {
	return e.data.ExprKind()
}

func (e Expr) Data() exprData {
	return e.data
}

func (e Expr) Type() *Type {
	return e.ty
}

func (e *Expr) SetType(ty *Type) {
	e.ty = ty
}

func (e Expr) Span() common.Span {
	return e.data.Span()
}

func (e *Expr) Number() *ExprNumber {
	if e.Kind() != ExprKindNumber {
		panic("not a number")
	}
	return e.data.(*ExprNumber)
}

func (e *Expr) VarRef() *ExprVarRef {
	if e.Kind() != ExprKindVarRef {
		panic("not a variable reference")
	}
	return e.data.(*ExprVarRef)
}

func (e *Expr) Binary() *ExprBinary {
	if e.Kind() != ExprKindBinary {
		panic("not a binary")
	}
	return e.data.(*ExprBinary)
}

func (e *Expr) Call() *ExprCall {
	if e.Kind() != ExprKindCall {
		panic("not a call")
	}
	return e.data.(*ExprCall)
}

func (e *Expr) AtFunction() *ExprAtFunction {
	if e.Kind() != ExprKindAtFunction {
		panic("not an at function")
	}
	return e.data.(*ExprAtFunction)
}

func (e *Expr) MemberAccess() *ExprMemberAccess {
	if e.Kind() != ExprKindMemberAccess {
		panic("not a member access")
	}
	return e.data.(*ExprMemberAccess)
}

/* Number literal */

type ExprNumber struct {
	Value     float64
	IsInteger bool
	span      common.Span
}

func NewNumberExpr(value float64, isInteger bool, span common.Span) Expr {
	return NewExpr(&ExprNumber{Value: value, IsInteger: isInteger, span: span})
}

func (e *ExprNumber) ExprKind() ExprKind { return ExprKindNumber }

func (e *ExprNumber) Span() common.Span { return e.span }

/* String literal */

type ExprString struct {
	Value string
	span  common.Span
}

func NewStringExpr(value string, span common.Span) Expr {
	return NewExpr(&ExprString{Value: value, span: span})
}

func (e *ExprString) ExprKind() ExprKind { return ExprKindString }

func (e *ExprString) Span() common.Span { return e.span }

/* Bool literal */

type ExprBool struct {
	Value bool
	span  common.Span
}

func NewBoolExpr(value bool, span common.Span) Expr {
	return NewExpr(&ExprBool{Value: value, span: span})
}

func (e *ExprBool) ExprKind() ExprKind { return ExprKindBool }

func (e *ExprBool) Span() common.Span { return e.span }

/* Variable reference */

type ExprVarRef struct {
	Name string
	span common.Span
}

func NewVarRefExpr(name string, span common.Span) Expr {
	return NewExpr(&ExprVarRef{Name: name, span: span})
}

func (e *ExprVarRef) ExprKind() ExprKind { return ExprKindVarRef }

func (e *ExprVarRef) Span() common.Span { return e.span }

/* Binary operation */

type ExprBinary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
	span  common.Span
}

func NewBinaryExpr(left Expr, op BinaryOp, right Expr, span common.Span) Expr {
	return NewExpr(&ExprBinary{Op: op, Left: left, Right: right, span: span})
}

func (e *ExprBinary) ExprKind() ExprKind { return ExprKindBinary }

func (e *ExprBinary) Span() common.Span { return e.span }

/* Call */

// ExprCall applies a function expression to a single argument; the grammar
// has no argument lists.
type ExprCall struct {
	Function Expr
	Argument Expr
	span     common.Span
}

func NewCallExpr(fn, arg Expr, span common.Span) Expr {
	return NewExpr(&ExprCall{Function: fn, Argument: arg, span: span})
}

func (e *ExprCall) ExprKind() ExprKind { return ExprKindCall }

func (e *ExprCall) Span() common.Span { return e.span }

/* At function literal */

// ExprAtFunction is an anonymous function literal:
// `@(Type name) Type { ... }`.
type ExprAtFunction struct {
	ParamName  string
	ParamType  *Type
	ReturnType *Type
	Body       []Stmt
	span       common.Span
}

func NewAtFunctionExpr(paramName string, paramType, returnType *Type, body []Stmt, span common.Span) Expr {
	return NewExpr(&ExprAtFunction{
		ParamName:  paramName,
		ParamType:  paramType,
		ReturnType: returnType,
		Body:       body,
		span:       span,
	})
}

func (e *ExprAtFunction) ExprKind() ExprKind { return ExprKindAtFunction }

func (e *ExprAtFunction) Span() common.Span { return e.span }

/* Member access */

type ExprMemberAccess struct {
	Object Expr
	Member string
	span   common.Span
}

func NewMemberAccessExpr(object Expr, member string, span common.Span) Expr {
	return NewExpr(&ExprMemberAccess{Object: object, Member: member, span: span})
}

func (e *ExprMemberAccess) ExprKind() ExprKind { return ExprKindMemberAccess }

func (e *ExprMemberAccess) Span() common.Span { return e.span }
