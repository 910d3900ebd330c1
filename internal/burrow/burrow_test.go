package burrow

import (
	"strings"
	"testing"
)

const example = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`

const exampleUnfolded = `#############
#...........#
###B#C#B#D###
  #D#C#B#A#
  #D#B#A#C#
  #A#D#C#A#
  #########
`

// mustState builds a state from a hallway string and room columns written
// top cell first, e.g. "BA".
func mustState(t *testing.T, hallway string, rooms ...string) State {
	t.Helper()
	var h [HallwayLen]Type
	for i, c := range hallway {
		v, ok := TypeFromRune(c)
		if !ok {
			t.Fatalf("bad hallway cell %q", c)
		}
		h[i] = v
	}
	var cols [Rooms][]Type
	for r, room := range rooms {
		for _, c := range room {
			v, ok := TypeFromRune(c)
			if !ok {
				t.Fatalf("bad room cell %q", c)
			}
			cols[r] = append(cols[r], v)
		}
	}
	s, err := New(h, cols)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestTypeTables(t *testing.T) {
	tests := []struct {
		typ  Type
		cost uint32
		room int
		name string
	}{
		{A, 1, 0, "A"},
		{B, 10, 1, "B"},
		{C, 100, 2, "C"},
		{D, 1000, 3, "D"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.Cost(); got != tt.cost {
				t.Errorf("Cost() = %d, want %d", got, tt.cost)
			}
			if got := tt.typ.Room(); got != tt.room {
				t.Errorf("Room() = %d, want %d", got, tt.room)
			}
			if got := tt.typ.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got, ok := TypeFromRune(rune(tt.name[0])); !ok || got != tt.typ {
				t.Errorf("TypeFromRune(%q) = %v, %v", tt.name, got, ok)
			}
		})
	}

	if _, ok := TypeFromRune('E'); ok {
		t.Error("TypeFromRune('E') should fail")
	}
	if v, ok := TypeFromRune('.'); !ok || v != Empty {
		t.Errorf("TypeFromRune('.') = %v, %v", v, ok)
	}
}

func TestEntrances(t *testing.T) {
	for r, want := range []int{2, 4, 6, 8} {
		if got := Entrance(r); got != want {
			t.Errorf("Entrance(%d) = %d, want %d", r, got, want)
		}
	}
}

func TestNew(t *testing.T) {
	var h [HallwayLen]Type

	t.Run("uneven rooms", func(t *testing.T) {
		_, err := New(h, [Rooms][]Type{{A, B}, {A}, {C, C}, {D, D}})
		if err == nil {
			t.Fatal("expected an error for rooms of different depth")
		}
	})

	t.Run("too deep", func(t *testing.T) {
		deep := make([]Type, MaxDepth+1)
		_, err := New(h, [Rooms][]Type{deep, deep, deep, deep})
		if err == nil {
			t.Fatal("expected an error for rooms deeper than MaxDepth")
		}
	})

	t.Run("accessors", func(t *testing.T) {
		s := mustState(t, "A..........", "BA", "CD", "BC", "DA")
		if s.Depth() != 2 {
			t.Errorf("Depth() = %d", s.Depth())
		}
		if s.Hallway(0) != A || s.Hallway(1) != Empty {
			t.Errorf("unexpected hallway %v", s.HallwayCells())
		}
		if s.Room(1, 0) != C || s.Room(1, 1) != D {
			t.Errorf("room 1 = %v", s.RoomOf(1))
		}
	})
}

func TestSettersCopy(t *testing.T) {
	s := mustState(t, "...........", "BA", "CD", "BC", "DA")

	h := s.WithHallway(3, B)
	if s.Hallway(3) != Empty {
		t.Error("WithHallway modified the original state")
	}
	if h.Hallway(3) != B {
		t.Error("WithHallway did not set the cell")
	}

	r := s.WithRoom(0, 0, Empty)
	if s.Room(0, 0) != B {
		t.Error("WithRoom modified the original state")
	}
	if r.Room(0, 0) != Empty {
		t.Error("WithRoom did not set the cell")
	}

	room := s.RoomOf(2)
	room[0] = D
	if s.Room(2, 0) != B {
		t.Error("RoomOf returned a view instead of a copy")
	}

	if s.WithHallway(3, B).WithHallway(3, Empty) != s {
		t.Error("states with the same cells should be equal")
	}
}

func TestSettled(t *testing.T) {
	s := mustState(t, "...........", ".A", "BB", "BC", "..")
	for r, want := range []bool{true, true, false, true} {
		if got := s.Settled(r); got != want {
			t.Errorf("Settled(%d) = %v, want %v", r, got, want)
		}
	}
}

func TestCensus(t *testing.T) {
	s := mustState(t, "D.........A", "BA", "C.", "BC", ".A")
	want := map[Type]int{A: 3, B: 2, C: 2, D: 1}
	got := s.Census()
	if len(got) != len(want) {
		t.Fatalf("Census() = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("Census()[%s] = %d, want %d", k, got[k], v)
		}
	}
}

func TestString(t *testing.T) {
	s, err := ParseString(example)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.String(); got != example {
		t.Errorf("String() =\n%s\nwant\n%s", got, example)
	}

	again, err := ParseString(s.WithHallway(0, A).WithRoom(3, 1, Empty).String())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(again.String(), "#############\n#A..........#\n") {
		t.Errorf("unexpected hallway rendering:\n%s", again)
	}
}
