package lexer

import "github.com/Tamagosushio/esperopp/frontend/common"

// Keyword represents a reserved keyword.
type Keyword int

const (
	_ Keyword = iota
	KwFunkcio
	KwKlaso
	KwSe
	KwAlie
	KwDum
	KwReveni
	KwTiu
	KwVero
	KwMalvero
	// type keywords below
	KwEntjera
	KwReala
	KwTeksta
	KwBulea
	KwFunkcia
)

var keywordTable = map[string]Keyword{
	"funkcio": KwFunkcio,
	"klaso":   KwKlaso,
	"se":      KwSe,
	"alie":    KwAlie,
	"dum":     KwDum,
	"reveni":  KwReveni,
	"tiu":     KwTiu,
	"vero":    KwVero,
	"malvero": KwMalvero,
	"entjera": KwEntjera,
	"reala":   KwReala,
	"teksta":  KwTeksta,
	"bulea":   KwBulea,
	"funkcia": KwFunkcia,
}

var keywordNames = func() []string {
	// find the largest enum value so the slice is the right length
	var max Keyword
	for _, kw := range keywordTable {
		if kw > max {
			max = kw
		}
	}
	names := make([]string, max+1)
	for lit, kw := range keywordTable {
		names[kw] = lit
	}
	return names
}()

// keywordKinds are the token-type names used in token dumps.
var keywordKinds = map[Keyword]string{
	KwFunkcio: "Funkcio",
	KwKlaso:   "Klaso",
	KwSe:      "Se",
	KwAlie:    "Alie",
	KwDum:     "Dum",
	KwReveni:  "Reveni",
	KwTiu:     "Tiu",
	KwVero:    "Vero",
	KwMalvero: "Malvero",
	KwEntjera: "Entjera",
	KwReala:   "Reala",
	KwTeksta:  "Teksta",
	KwBulea:   "Bulea",
	KwFunkcia: "Funkcia",
}

func lookupKeyword(lit string) (Keyword, bool) {
	kw, ok := keywordTable[lit]
	return kw, ok
}

// IsTypeKeyword reports whether kw names one of the primitive types.
func (kw Keyword) IsTypeKeyword() bool {
	switch kw {
	case KwEntjera, KwReala, KwTeksta, KwBulea, KwFunkcia:
		return true
	default:
		return false
	}
}

type TokKeyword struct {
	Keyword Keyword
	span    common.Span
}

func (t TokKeyword) isToken() {}

func (t TokKeyword) Span() common.Span {
	return t.span
}

func (t TokKeyword) String() string {
	return keywordNames[t.Keyword]
}

func (t TokKeyword) Is(other string) bool {
	return keywordTable[other] == t.Keyword
}

func (t TokKeyword) AsString() string {
	return t.String()
}

func (t TokKeyword) Kind() string {
	return keywordKinds[t.Keyword]
}

func newTokKeyword(k Keyword, span common.Span) TokKeyword {
	return TokKeyword{Keyword: k, span: span}
}
