package game

import (
	"errors"
	"testing"
)

func TestIndexCoordRoundTrip(t *testing.T) {
	for i := 0; i < CellCount; i++ {
		c := ToCoord(i)
		if !InBounds(c.X, c.Y) {
			t.Fatalf("ToCoord(%d)=%v out of bounds", i, c)
		}
		if got := ToIndex(c.X, c.Y); got != i {
			t.Fatalf("ToIndex(ToCoord(%d))=%d", i, got)
		}
	}
	if ToIndex(3, 2) != 23 {
		t.Fatalf("ToIndex(3,2)=%d, want 23", ToIndex(3, 2))
	}
}

func TestCellName(t *testing.T) {
	cases := map[int]string{0: "A1", 9: "J1", 12: "C2", 90: "A10", 99: "J10"}
	for idx, want := range cases {
		if got := CellName(idx); got != want {
			t.Fatalf("CellName(%d)=%q, want %q", idx, got, want)
		}
		back, err := ParseCellName(want)
		if err != nil || back != idx {
			t.Fatalf("ParseCellName(%q)=%d,%v want %d", want, back, err, idx)
		}
	}
	if idx, err := ParseCellName(" c2 "); err != nil || idx != 12 {
		t.Fatalf("lower-case parse=%d,%v", idx, err)
	}
	for _, bad := range []string{"", "A", "K1", "A0", "A11", "1A", "@3"} {
		if _, err := ParseCellName(bad); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("ParseCellName(%q): expected ErrOutOfBounds, got %v", bad, err)
		}
	}
}

func TestInBoundsEdges(t *testing.T) {
	if !InBounds(0, 0) || !InBounds(9, 9) {
		t.Fatal("corners should be in bounds")
	}
	if InBounds(-1, 0) || InBounds(0, 10) || InBounds(10, 0) {
		t.Fatal("outside cells reported in bounds")
	}
	if ValidIndex(-1) || ValidIndex(CellCount) || !ValidIndex(0) {
		t.Fatal("ValidIndex edges wrong")
	}
}
