package common

import "testing"

func TestSpanFrom(t *testing.T) {
	start := SpanNew(1, 1, 4, 7)
	start.Source = "a.epp"
	end := SpanNew(3, 3, 0, 2)

	joined := SpanFrom(start, end)
	if joined.LineStart != 1 || joined.LineEnd != 3 {
		t.Fatalf("lines wrong. got=%d-%d", joined.LineStart, joined.LineEnd)
	}
	if joined.ColumnStart != 4 || joined.ColumnEnd != 2 {
		t.Fatalf("columns wrong. got=%d-%d", joined.ColumnStart, joined.ColumnEnd)
	}
	if joined.Source != "a.epp" {
		t.Fatalf("source wrong. got=%q", joined.Source)
	}
}

func TestSpanToRange(t *testing.T) {
	// lines are 1-based and shift down; columns are already 0-based
	r := SpanNew(2, 2, 5, 8).ToRange()
	if r.Start.Line != 1 || r.Start.Character != 5 {
		t.Fatalf("start wrong. got=%d:%d", r.Start.Line, r.Start.Character)
	}
	if r.End.Line != 1 || r.End.Character != 8 {
		t.Fatalf("end wrong. got=%d:%d", r.End.Line, r.End.Character)
	}
}

func TestDiagLine(t *testing.T) {
	diag := ErrorDiag("expected: ;", SpanNew(4, 4, 0, 1))
	if diag.Message != "expected: ;" {
		t.Fatalf("message wrong. got=%q", diag.Message)
	}
	if line := DiagLine(diag); line != 4 {
		t.Fatalf("line wrong. expected=4, got=%d", line)
	}
}
