// Package ast holds the type model and the closed expression/statement node
// families produced by the parser. Nodes form a strict tree: each node is
// owned by exactly one parent, with only *Type values shared between sites.
package ast

// Program is the root of the tree: the ordered top-level statements.
type Program struct {
	Stmts []Stmt
}
