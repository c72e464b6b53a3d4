package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Structural text rendering for inspection and debugging. The output is
// deterministic (2 spaces per nesting level) but is not a serialization
// format and carries no stability guarantee.

func indentStr(indent int) string {
	return strings.Repeat("  ", indent)
}

func (p *Program) Render() string {
	var sb strings.Builder
	sb.WriteString("Program\n")
	renderBody(&sb, p.Stmts, 2)
	return sb.String()
}

// RenderStmt renders a single statement subtree at the given nesting level.
func RenderStmt(s Stmt, indent int) string {
	var sb strings.Builder
	renderStmt(&sb, s, indent)
	return sb.String()
}

// Render renders an expression subtree at the given nesting level.
func (e Expr) Render(indent int) string {
	var sb strings.Builder
	renderExpr(&sb, e, indent)
	return sb.String()
}

// renderBody writes statements joined by newlines, without a trailing one.
func renderBody(sb *strings.Builder, body []Stmt, indent int) {
	for i, s := range body {
		renderStmt(sb, s, indent)
		if i < len(body)-1 {
			sb.WriteByte('\n')
		}
	}
}

func renderStmt(sb *strings.Builder, stmt Stmt, indent int) {
	ind := indentStr(indent)
	switch s := stmt.(type) {
	case *StmtVarDecl:
		fmt.Fprintf(sb, "%sVarDecl(%s %s)", ind, s.Type, s.Name)
		if s.Initializer != nil {
			fmt.Fprintf(sb, "\n%sinitializer:\n", indentStr(indent+1))
			renderExpr(sb, *s.Initializer, indent+2)
		}
	case *StmtAssign:
		fmt.Fprintf(sb, "%sAssign(%s)\n", ind, s.Name)
		renderExpr(sb, s.Value, indent+1)
	case *StmtFuncDecl:
		fmt.Fprintf(sb, "%sFunctionDecl(%s(%s %s)%s)\n", ind, s.Name, s.ParamType, s.ParamName, s.ReturnType)
		fmt.Fprintf(sb, "%sbody:\n", indentStr(indent+1))
		renderBody(sb, s.Body, indent+2)
	case *StmtReturn:
		fmt.Fprintf(sb, "%sReturn\n", ind)
		renderExpr(sb, s.Value, indent+1)
	case *StmtIf:
		fmt.Fprintf(sb, "%sIf\n", ind)
		fmt.Fprintf(sb, "%scondition:\n", indentStr(indent+1))
		renderExpr(sb, s.Condition, indent+2)
		fmt.Fprintf(sb, "\n%sthen:\n", indentStr(indent+1))
		renderBody(sb, s.ThenBody, indent+2)
		if len(s.ElseBody) > 0 {
			fmt.Fprintf(sb, "\n%selse:\n", indentStr(indent+1))
			renderBody(sb, s.ElseBody, indent+2)
		}
	case *StmtWhile:
		fmt.Fprintf(sb, "%sWhile\n", ind)
		fmt.Fprintf(sb, "%scondition:\n", indentStr(indent+1))
		renderExpr(sb, s.Condition, indent+2)
		fmt.Fprintf(sb, "\n%sbody:\n", indentStr(indent+1))
		renderBody(sb, s.Body, indent+2)
	case *StmtClass:
		fmt.Fprintf(sb, "%sClassDecl(%s)\n", ind, s.Name)
		if len(s.Fields) > 0 {
			fmt.Fprintf(sb, "%sfields:\n", indentStr(indent+1))
			for i, f := range s.Fields {
				renderStmt(sb, f, indent+2)
				if i < len(s.Fields)-1 {
					sb.WriteByte('\n')
				}
			}
		}
		if len(s.Methods) > 0 {
			fmt.Fprintf(sb, "\n%smethods:\n", indentStr(indent+1))
			for i, m := range s.Methods {
				renderStmt(sb, m, indent+2)
				if i < len(s.Methods)-1 {
					sb.WriteByte('\n')
				}
			}
		}
	case *StmtExpr:
		renderExpr(sb, s.Expr, indent)
	default:
		panic("unreachable")
	}
}

func renderExpr(sb *strings.Builder, expr Expr, indent int) {
	ind := indentStr(indent)
	switch e := expr.Data().(type) {
	case *ExprNumber:
		if e.IsInteger {
			fmt.Fprintf(sb, "%sNumberLiteral(%d)", ind, int64(e.Value))
		} else {
			fmt.Fprintf(sb, "%sNumberLiteral(%s)", ind, strconv.FormatFloat(e.Value, 'g', -1, 64))
		}
	case *ExprString:
		fmt.Fprintf(sb, "%sStringLiteral(\"%s\")", ind, e.Value)
	case *ExprBool:
		lit := "malvero"
		if e.Value {
			lit = "vero"
		}
		fmt.Fprintf(sb, "%sBoolLiteral(%s)", ind, lit)
	case *ExprVarRef:
		fmt.Fprintf(sb, "%sVarRef(%s)", ind, e.Name)
	case *ExprBinary:
		fmt.Fprintf(sb, "%sBinaryOp(%s)\n", ind, e.Op)
		renderExpr(sb, e.Left, indent+1)
		sb.WriteByte('\n')
		renderExpr(sb, e.Right, indent+1)
	case *ExprCall:
		fmt.Fprintf(sb, "%sCall\n", ind)
		fmt.Fprintf(sb, "%sfunction:\n", indentStr(indent+1))
		renderExpr(sb, e.Function, indent+2)
		fmt.Fprintf(sb, "\n%sargument:\n", indentStr(indent+1))
		renderExpr(sb, e.Argument, indent+2)
	case *ExprAtFunction:
		fmt.Fprintf(sb, "%sAtFunction(@(%s %s)%s)\n", ind, e.ParamType, e.ParamName, e.ReturnType)
		fmt.Fprintf(sb, "%sbody:\n", indentStr(indent+1))
		renderBody(sb, e.Body, indent+2)
	case *ExprMemberAccess:
		fmt.Fprintf(sb, "%sMemberAccess(.%s)\n", ind, e.Member)
		renderExpr(sb, e.Object, indent+1)
	default:
		panic("unreachable")
	}
}
