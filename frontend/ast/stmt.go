package ast

import (
	"github.com/Tamagosushio/esperopp/frontend/common"
)

type Stmt interface {
	isStmt()
	Span() common.Span
}

/* Variable declaration */

type StmtVarDecl struct {
	Name        string
	Type        *Type
	Initializer *Expr // may be nil
	span        common.Span
}

func NewVarDeclStmt(name string, ty *Type, init *Expr, span common.Span) *StmtVarDecl {
	return &StmtVarDecl{Name: name, Type: ty, Initializer: init, span: span}
}

func (s *StmtVarDecl) isStmt() {}

func (s *StmtVarDecl) Span() common.Span {
	return s.span
}

/* Assignment */

// StmtAssign assigns to a bare name; call results and member accesses are
// never assignable targets.
type StmtAssign struct {
	Name  string
	Value Expr
	span  common.Span
}

func NewAssignStmt(name string, value Expr, span common.Span) *StmtAssign {
	return &StmtAssign{Name: name, Value: value, span: span}
}

func (s *StmtAssign) isStmt() {}

func (s *StmtAssign) Span() common.Span {
	return s.span
}

/* Function declaration */

// StmtFuncDecl declares a named function with exactly one parameter.
type StmtFuncDecl struct {
	Name       string
	ParamName  string
	ParamType  *Type
	ReturnType *Type
	Body       []Stmt
	span       common.Span
}

func NewFuncDeclStmt(name, paramName string, paramType, returnType *Type, body []Stmt, span common.Span) *StmtFuncDecl {
	return &StmtFuncDecl{
		Name:       name,
		ParamName:  paramName,
		ParamType:  paramType,
		ReturnType: returnType,
		Body:       body,
		span:       span,
	}
}

func (s *StmtFuncDecl) isStmt() {}

func (s *StmtFuncDecl) Span() common.Span {
	return s.span
}

/* Return */

type StmtReturn struct {
	Value Expr
	span  common.Span
}

func NewReturnStmt(value Expr, span common.Span) *StmtReturn {
	return &StmtReturn{Value: value, span: span}
}

func (s *StmtReturn) isStmt() {}

func (s *StmtReturn) Span() common.Span {
	return s.span
}

/* If */

type StmtIf struct {
	Condition Expr
	ThenBody  []Stmt
	ElseBody  []Stmt // nil when there is no alie branch
	span      common.Span
}

func NewIfStmt(cond Expr, thenBody, elseBody []Stmt, span common.Span) *StmtIf {
	return &StmtIf{Condition: cond, ThenBody: thenBody, ElseBody: elseBody, span: span}
}

func (s *StmtIf) isStmt() {}

func (s *StmtIf) Span() common.Span {
	return s.span
}

/* While */

type StmtWhile struct {
	Condition Expr
	Body      []Stmt
	span      common.Span
}

func NewWhileStmt(cond Expr, body []Stmt, span common.Span) *StmtWhile {
	return &StmtWhile{Condition: cond, Body: body, span: span}
}

func (s *StmtWhile) isStmt() {}

func (s *StmtWhile) Span() common.Span {
	return s.span
}

/* Class declaration */

// StmtClass exists in the node family but no grammar path constructs one;
// class syntax is unspecified.
type StmtClass struct {
	Name    string
	Fields  []*StmtVarDecl
	Methods []*StmtFuncDecl
	span    common.Span
}

func NewClassStmt(name string, fields []*StmtVarDecl, methods []*StmtFuncDecl, span common.Span) *StmtClass {
	return &StmtClass{Name: name, Fields: fields, Methods: methods, span: span}
}

func (s *StmtClass) isStmt() {}

func (s *StmtClass) Span() common.Span {
	return s.span
}

/* Expression statement */

type StmtExpr struct {
	Expr Expr
	span common.Span
}

func NewExprStmt(expr Expr, span common.Span) *StmtExpr {
	return &StmtExpr{Expr: expr, span: span}
}

func (s *StmtExpr) isStmt() {}

func (s *StmtExpr) Span() common.Span {
	return s.span
}
