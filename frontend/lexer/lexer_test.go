package lexer

import (
	"testing"
)

func lex(t *testing.T, input string) []Token {
	t.Helper()
	tokens := Lex("test.epp", input)
	if len(tokens) == 0 {
		t.Fatal("empty token stream")
	}
	if !IsEOF(tokens[len(tokens)-1]) {
		t.Fatalf("stream does not end with EOF, got %s", tokens[len(tokens)-1].Kind())
	}
	return tokens
}

func checkKinds(t *testing.T, input string, expected []string) {
	t.Helper()
	tokens := lex(t, input)
	if len(tokens) != len(expected) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(expected), len(tokens))
	}
	for i, kind := range expected {
		if tokens[i].Kind() != kind {
			t.Fatalf("tokens[%d] - kind wrong. expected=%q, got=%q", i, kind, tokens[i].Kind())
		}
	}
}

func TestLex_EmptyAndWhitespaceOnly(t *testing.T) {
	for _, input := range []string{"", "   ", " \t\r\n  "} {
		tokens := lex(t, input)
		if len(tokens) != 1 {
			t.Fatalf("input %q: expected exactly one EOF token, got %d tokens", input, len(tokens))
		}
	}
}

func TestLex_IntegerLiteral(t *testing.T) {
	tokens := lex(t, "42")
	if len(tokens) != 2 {
		t.Fatalf("expected Number + EOF, got %d tokens", len(tokens))
	}
	num, ok := tokens[0].(TokNumber)
	if !ok {
		t.Fatalf("expected TokNumber, got %T", tokens[0])
	}
	if num.Raw != "42" {
		t.Fatalf("raw wrong. expected=%q, got=%q", "42", num.Raw)
	}
}

func TestLex_RealLiteral(t *testing.T) {
	tokens := lex(t, "3.14")
	num, ok := tokens[0].(TokNumber)
	if !ok {
		t.Fatalf("expected TokNumber, got %T", tokens[0])
	}
	if num.Raw != "3.14" {
		t.Fatalf("raw wrong. expected=%q, got=%q", "3.14", num.Raw)
	}
}

func TestLex_TwoDotsTerminateNumber(t *testing.T) {
	// the second dot ends the literal; it lexes as its own Dot token
	checkKinds(t, "1.2.3", []string{"Number", "Dot", "Number", "EndOfFile"})
	tokens := lex(t, "1.2.3")
	if raw := tokens[0].(TokNumber).Raw; raw != "1.2" {
		t.Fatalf("first number wrong. expected=%q, got=%q", "1.2", raw)
	}
	if raw := tokens[2].(TokNumber).Raw; raw != "3" {
		t.Fatalf("second number wrong. expected=%q, got=%q", "3", raw)
	}
}

func TestLex_CommentSkipped(t *testing.T) {
	tokens := lex(t, "// c\nentjera x;")
	expected := []struct {
		kind    string
		literal string
	}{
		{"Entjera", "entjera"},
		{"Identifier", "x"},
		{"Semicolon", ";"},
		{"EndOfFile", "<EOF>"},
	}
	if len(tokens) != len(expected) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(expected), len(tokens))
	}
	for i, tt := range expected {
		if tokens[i].Kind() != tt.kind {
			t.Fatalf("tokens[%d] - kind wrong. expected=%q, got=%q", i, tt.kind, tokens[i].Kind())
		}
		if tokens[i].String() != tt.literal {
			t.Fatalf("tokens[%d] - literal wrong. expected=%q, got=%q", i, tt.literal, tokens[i].String())
		}
	}
}

func TestLex_CommentToEndOfInput(t *testing.T) {
	checkKinds(t, "x // trailing", []string{"Identifier", "EndOfFile"})
}

func TestLex_SlashAloneIsDivide(t *testing.T) {
	checkKinds(t, "a / b", []string{"Identifier", "Divide", "Identifier", "EndOfFile"})
}

func TestLex_Operators(t *testing.T) {
	input := "= == != < > <= >= + - * /"
	checkKinds(t, input, []string{
		"Assign", "Equal", "NotEqual", "Less", "Greater", "LessEqual",
		"GreaterEqual", "Plus", "Minus", "Multiply", "Divide", "EndOfFile",
	})
}

func TestLex_Punctuation(t *testing.T) {
	checkKinds(t, "( ) { } ; , @ .", []string{
		"LParen", "RParen", "LBrace", "RBrace", "Semicolon", "Comma",
		"At", "Dot", "EndOfFile",
	})
}

func TestLex_Keywords(t *testing.T) {
	input := "funkcio klaso se alie dum reveni tiu vero malvero entjera reala teksta bulea funkcia"
	checkKinds(t, input, []string{
		"Funkcio", "Klaso", "Se", "Alie", "Dum", "Reveni", "Tiu", "Vero",
		"Malvero", "Entjera", "Reala", "Teksta", "Bulea", "Funkcia",
		"EndOfFile",
	})
}

func TestLex_IdentifierIsNotKeyword(t *testing.T) {
	for _, input := range []string{"funkcioj", "x", "_nomo", "se2", "Dum"} {
		tokens := lex(t, input)
		if tokens[0].Kind() != "Identifier" {
			t.Fatalf("input %q: expected Identifier, got %q", input, tokens[0].Kind())
		}
	}
}

func TestLex_IsIdent(t *testing.T) {
	tokens := lex(t, "nomo se")
	if !IsIdent(tokens[0]) {
		t.Fatal("identifier token not classified as identifier")
	}
	if IsIdent(tokens[1]) || IsIdent(tokens[2]) {
		t.Fatal("keyword/EOF tokens classified as identifiers")
	}
}

func TestLex_StringEscapes(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"saluton"`, "saluton"},
		{`"a\nb"`, "a\nb"},
		{`"a\tb"`, "a\tb"},
		{`"a\\b"`, `a\b`},
		{`"a\"b"`, `a"b`},
		// unknown escapes copy the character through
		{`"a\qb"`, "aqb"},
	}
	for _, tt := range tests {
		tokens := lex(t, tt.input)
		str, ok := tokens[0].(TokString)
		if !ok {
			t.Fatalf("input %q: expected TokString, got %T", tt.input, tokens[0])
		}
		if str.Raw != tt.expected {
			t.Fatalf("input %q: value wrong. expected=%q, got=%q", tt.input, tt.expected, str.Raw)
		}
	}
}

func TestLex_UnterminatedStringRunsToEOF(t *testing.T) {
	tokens := lex(t, `"nefermita`)
	if len(tokens) != 2 {
		t.Fatalf("expected String + EOF, got %d tokens", len(tokens))
	}
	if str := tokens[0].(TokString); str.Raw != "nefermita" {
		t.Fatalf("value wrong. expected=%q, got=%q", "nefermita", str.Raw)
	}
}

func TestLex_LoneBangIsUnknown(t *testing.T) {
	tokens := lex(t, "!")
	unk, ok := tokens[0].(TokUnknown)
	if !ok {
		t.Fatalf("expected TokUnknown, got %T", tokens[0])
	}
	if unk.Raw != "!" {
		t.Fatalf("raw wrong. expected=%q, got=%q", "!", unk.Raw)
	}
}

func TestLex_UnknownCharactersNeverStopLexing(t *testing.T) {
	checkKinds(t, "x # $ y", []string{
		"Identifier", "Unknown", "Unknown", "Identifier", "EndOfFile",
	})
}

func TestLex_Positions(t *testing.T) {
	tokens := lex(t, "ab cd\nef")
	tests := []struct {
		line, column uint32
	}{
		{1, 0}, // ab
		{1, 3}, // cd
		{2, 0}, // ef
		{2, 2}, // EOF
	}
	for i, tt := range tests {
		span := tokens[i].Span()
		if span.LineStart != tt.line || span.ColumnStart != tt.column {
			t.Fatalf("tokens[%d] - position wrong. expected=%d:%d, got=%d:%d",
				i, tt.line, tt.column, span.LineStart, span.ColumnStart)
		}
	}
}

func TestLex_EOFPositionAfterTrailingWhitespace(t *testing.T) {
	tokens := lex(t, "x \n\t ")
	eof := tokens[len(tokens)-1]
	span := eof.Span()
	if span.LineStart != 2 || span.ColumnStart != 2 {
		t.Fatalf("EOF position wrong. expected=2:2, got=%d:%d", span.LineStart, span.ColumnStart)
	}
}

func TestLex_TwoCharOperatorPosition(t *testing.T) {
	tokens := lex(t, "a <= b")
	span := tokens[1].Span()
	if span.LineStart != 1 || span.ColumnStart != 2 {
		t.Fatalf("<= position wrong. expected=1:2, got=%d:%d", span.LineStart, span.ColumnStart)
	}
	if span.ColumnEnd != 4 {
		t.Fatalf("<= end column wrong. expected=4, got=%d", span.ColumnEnd)
	}
}
