package burrow

// Move is one legal relocation of a single amphipod.
type Move struct {
	Next State
	Cost uint32
}

// Verify that the hallway is free between src and dst, src excluded and
// dst included.
func (s *State) pathClear(src, dst uint8) bool {

	// Two loops seem faster than swapping values (src, dst = dst, src).
	if src > dst {
		for c := dst; c < src; c++ {
			if s.h[c] != Empty {
				return false
			}
		}
	} else {
		for c := src + 1; c <= dst; c++ {
			if s.h[c] != Empty {
				return false
			}
		}
	}

	return true

}

// top returns the shallowest occupied cell of room r, or -1.
func (s *State) top(r int) int {
	for d := 0; d < int(s.depth); d++ {
		if s.rooms[r][d] != Empty {
			return d
		}
	}
	return -1
}

// deepestEmpty returns the deepest free cell of room r, or -1.
func (s *State) deepestEmpty(r int) int {
	for d := int(s.depth) - 1; d >= 0; d-- {
		if s.rooms[r][d] == Empty {
			return d
		}
	}
	return -1
}

// Moves lists every move reachable from s in one step. Amphipods either
// walk from the hallway straight into their room or leave a room for a
// hallway spot; room to room trips are the sum of those two edges.
//
// With prune set, an amphipod sitting on top of its own kind in its own
// room is never taken out again. This only trims the search, it does not
// change the cheapest cost.
func Moves(s State, prune bool) []Move {

	var moves []Move

	// Hallway->room
	for src, v := range s.h {
		if v == Empty {
			continue
		}
		r := v.Room()
		dst := entrances[r]
		if !s.pathClear(uint8(src), dst) || !s.holdsOnly(r, 0, v) {
			continue
		}
		d := s.deepestEmpty(r)
		if d == -1 {
			continue
		}
		steps := uint32(absDiff(uint8(src), dst)) + uint32(d) + 1
		next := s
		next.h[src] = Empty
		next.rooms[r][d] = v
		moves = append(moves, Move{Next: next, Cost: steps * v.Cost()})
	}

	// Room->hallway
	for r := 0; r < Rooms; r++ {
		src := entrances[r]
		if s.h[src] != Empty {
			continue
		}
		d := s.top(r)
		if d == -1 {
			continue
		}
		v := s.rooms[r][d]
		if prune && v.Room() == r && s.holdsOnly(r, d, v) {
			continue
		}
		for _, dst := range spots {
			if !s.pathClear(src, dst) {
				continue
			}
			steps := uint32(d) + 1 + uint32(absDiff(src, dst))
			next := s
			next.rooms[r][d] = Empty
			next.h[dst] = v
			moves = append(moves, Move{Next: next, Cost: steps * v.Cost()})
		}
	}

	return moves

}
