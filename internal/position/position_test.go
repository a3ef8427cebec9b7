package position

import "testing"

func pos(line, col, offset int) Position {
	return Position{Filename: "a.gal", Line: line, Column: col, Offset: offset}
}

func TestPositionValidity(t *testing.T) {
	if !pos(1, 1, 0).IsValid() {
		t.Fatal("expected valid position")
	}

	if Nonexistent.IsValid() {
		t.Fatal("nonexistent position must not be valid")
	}

	if !Nonexistent.IsNonexistent() {
		t.Fatal("Nonexistent must report IsNonexistent")
	}
}

func TestSpanUnion(t *testing.T) {
	a := Span{Start: pos(1, 1, 0), End: pos(1, 5, 4)}
	b := Span{Start: pos(1, 3, 2), End: pos(1, 9, 8)}

	u := a.Union(b)
	if u.Start != a.Start || u.End != b.End {
		t.Fatalf("unexpected union: %+v", u)
	}
}

func TestSpanContains(t *testing.T) {
	s := Span{Start: pos(2, 1, 10), End: pos(2, 10, 19)}
	if !s.Contains(pos(2, 5, 14)) {
		t.Fatal("expected span to contain inner position")
	}

	if s.Contains(pos(2, 10, 19)) {
		t.Fatal("span end is exclusive")
	}
}

func TestSourceFileSpanText(t *testing.T) {
	sf := NewSourceFile("a.gal", "fn ::f() -> void {}\n")
	span := Span{
		Start: Position{Filename: "a.gal", Line: 1, Column: 1, Offset: 0},
		End:   Position{Filename: "a.gal", Line: 1, Column: 3, Offset: 2},
	}

	if got := sf.GetSpanText(span); got != "fn" {
		t.Fatalf("expected %q, got %q", "fn", got)
	}
}

func TestSourceMapRoundTrip(t *testing.T) {
	sm := NewSourceMap()
	sm.AddFile("a.gal", "let x = 1\n")

	if got := sm.GetLine(Position{Filename: "a.gal", Line: 1}); got != "let x = 1" {
		t.Fatalf("unexpected line: %q", got)
	}
}
