package ast

import "fmt"

// TypeKind tags a value descriptor.
type TypeKind uint8

const (
	_ TypeKind = iota
	TypeEntjera
	TypeReala
	TypeTeksta
	TypeBulea
	TypeFunkcia
	TypeKlaso
	TypeVoid
)

func (k TypeKind) String() string {
	switch k {
	case TypeEntjera:
		return "entjera"
	case TypeReala:
		return "reala"
	case TypeTeksta:
		return "teksta"
	case TypeBulea:
		return "bulea"
	case TypeFunkcia:
		return "funkcia"
	case TypeKlaso:
		return "klaso"
	case TypeVoid:
		return "void"
	default:
		panic("unreachable")
	}
}

// Type is an immutable value descriptor. A Funkcia type composes a parameter
// and a return type; a Klaso type names a class. Types are never mutated
// after construction, so a *Type may be shared freely between declaration
// sites and expression nodes.
type Type struct {
	Kind      TypeKind
	Param     *Type // set only when Kind == TypeFunkcia
	Return    *Type // set only when Kind == TypeFunkcia
	ClassName string
}

func NewType(kind TypeKind) *Type {
	return &Type{Kind: kind}
}

func NewFunctionType(param, ret *Type) *Type {
	return &Type{Kind: TypeFunkcia, Param: param, Return: ret}
}

func NewClassType(name string) *Type {
	return &Type{Kind: TypeKlaso, ClassName: name}
}

func (t *Type) String() string {
	if t.Kind == TypeFunkcia && t.Param != nil && t.Return != nil {
		return fmt.Sprintf("(%s -> %s)", t.Param, t.Return)
	}
	if t.Kind == TypeKlaso {
		return t.ClassName
	}
	return t.Kind.String()
}
