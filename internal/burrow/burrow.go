// Package burrow models the amphipod burrow: a hallway of 11 cells above
// four rooms of equal depth. A State is a plain comparable value, so it
// can be used directly as a map key and copied freely when branching.
package burrow

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Type is the content of a single cell.
type Type uint8

const (
	Empty Type = iota
	A
	B
	C
	D
)

const (
	HallwayLen = 11
	Rooms      = 4
	MaxDepth   = 8
)

var (
	// Hallway cells sitting right above each room. Nobody stops there.
	entrances [Rooms]uint8 = [Rooms]uint8{2, 4, 6, 8}

	// Every other hallway cell.
	spots [7]uint8 = [7]uint8{0, 1, 3, 5, 7, 9, 10}

	weights [Rooms]uint32 = [Rooms]uint32{1, 10, 100, 1000}
)

// Cost returns the energy spent by one step of an amphipod of type t.
func (t Type) Cost() uint32 {
	return weights[t-1]
}

// Room returns the index of the room where t belongs.
func (t Type) Room() int {
	return int(t) - 1
}

func (t Type) String() string {
	return string(".ABCD"[t])
}

// TypeFromRune maps '.', 'A', 'B', 'C' and 'D' to their Type.
func TypeFromRune(r rune) (Type, bool) {
	switch r {
	case '.':
		return Empty, true
	case 'A', 'B', 'C', 'D':
		return Type(r-'A') + A, true
	}
	return Empty, false
}

// Entrance returns the hallway index above room r.
func Entrance(r int) int {
	return int(entrances[r])
}

// State is one configuration of the burrow. Room cells are indexed from
// the hallway down, cells past depth are always Empty.
type State struct {
	h     [HallwayLen]Type
	rooms [Rooms][MaxDepth]Type
	depth uint8
}

// New builds a state from a hallway and four top-to-bottom room columns.
func New(hallway [HallwayLen]Type, rooms [Rooms][]Type) (State, error) {
	depth := len(rooms[0])
	if depth < 1 || depth > MaxDepth {
		return State{}, fmt.Errorf("room depth %d out of range 1..%d", depth, MaxDepth)
	}
	s := State{h: hallway, depth: uint8(depth)}
	for r, room := range rooms {
		if len(room) != depth {
			return State{}, fmt.Errorf("room %d has depth %d, want %d", r, len(room), depth)
		}
		copy(s.rooms[r][:], room)
	}
	return s, nil
}

func (s State) Depth() int {
	return int(s.depth)
}

func (s State) Hallway(i int) Type {
	return s.h[i]
}

// HallwayCells returns a copy of the hallway.
func (s State) HallwayCells() [HallwayLen]Type {
	return s.h
}

func (s State) Room(r, d int) Type {
	return s.rooms[r][d]
}

// RoomOf returns a copy of room r, top cell first.
func (s State) RoomOf(r int) []Type {
	out := make([]Type, s.depth)
	copy(out, s.rooms[r][:s.depth])
	return out
}

// WithHallway returns a copy of s with hallway cell i set to t.
func (s State) WithHallway(i int, t Type) State {
	s.h[i] = t
	return s
}

// WithRoom returns a copy of s with cell d of room r set to t.
func (s State) WithRoom(r, d int, t Type) State {
	s.rooms[r][d] = t
	return s
}

// Settled reports whether room r only holds amphipods that belong there.
func (s State) Settled(r int) bool {
	return s.holdsOnly(r, 0, Type(r)+A)
}

// holdsOnly reports whether cells from..depth-1 of room r are Empty or t.
func (s State) holdsOnly(r, from int, t Type) bool {
	for d := from; d < int(s.depth); d++ {
		if v := s.rooms[r][d]; v != Empty && v != t {
			return false
		}
	}
	return true
}

// Census counts the amphipods of each type, wherever they are.
func (s State) Census() map[Type]int {
	counts := make(map[Type]int, Rooms)
	for _, v := range s.h {
		if v != Empty {
			counts[v]++
		}
	}
	for r := 0; r < Rooms; r++ {
		for d := 0; d < int(s.depth); d++ {
			if v := s.rooms[r][d]; v != Empty {
				counts[v]++
			}
		}
	}
	return counts
}

// String draws the state the way puzzle inputs are written.
func (s State) String() string {
	var b strings.Builder
	b.WriteString("#############\n#")
	for _, v := range s.h {
		b.WriteString(v.String())
	}
	b.WriteString("#\n")
	for d := 0; d < int(s.depth); d++ {
		if d == 0 {
			b.WriteString("###")
		} else {
			b.WriteString("  #")
		}
		for r := 0; r < Rooms; r++ {
			b.WriteString(s.rooms[r][d].String())
			b.WriteByte('#')
		}
		if d == 0 {
			b.WriteString("##")
		}
		b.WriteByte('\n')
	}
	b.WriteString("  #########\n")
	return b.String()
}

func absDiff[T constraints.Integer](a, b T) T {
	if a < b {
		return b - a
	}
	return a - b
}
