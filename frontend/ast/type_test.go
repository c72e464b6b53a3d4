package ast

import "testing"

func TestType_String(t *testing.T) {
	tests := []struct {
		ty       *Type
		expected string
	}{
		{NewType(TypeEntjera), "entjera"},
		{NewType(TypeReala), "reala"},
		{NewType(TypeTeksta), "teksta"},
		{NewType(TypeBulea), "bulea"},
		{NewType(TypeVoid), "void"},
		// a bare function type has no components and prints as the keyword
		{NewType(TypeFunkcia), "funkcia"},
		{NewFunctionType(NewType(TypeEntjera), NewType(TypeReala)), "(entjera -> reala)"},
		{NewClassType("Punkto"), "Punkto"},
	}
	for _, tt := range tests {
		if got := tt.ty.String(); got != tt.expected {
			t.Fatalf("String wrong. expected=%q, got=%q", tt.expected, got)
		}
	}
}

func TestType_FunctionComposition(t *testing.T) {
	entjera := NewType(TypeEntjera)
	inner := NewFunctionType(entjera, entjera)
	outer := NewFunctionType(inner, NewType(TypeBulea))
	if got := outer.String(); got != "((entjera -> entjera) -> bulea)" {
		t.Fatalf("String wrong. got=%q", got)
	}
	// the shared component is the same descriptor, not a copy
	if inner.Param != entjera || inner.Return != entjera {
		t.Fatal("components must be shared by reference")
	}
}
