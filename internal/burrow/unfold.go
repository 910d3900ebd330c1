package burrow

import "fmt"

// Rows hidden in the folded diagram, inserted between its two rows.
var unfolded = [2][Rooms]Type{
	{D, C, B, A},
	{D, B, A, C},
}

// Unfold turns a two-row burrow into the full four-row one.
func Unfold(s State) (State, error) {
	if s.depth != 2 {
		return State{}, fmt.Errorf("cannot unfold a burrow of depth %d", s.depth)
	}
	next := s
	next.depth = 4
	for r := 0; r < Rooms; r++ {
		next.rooms[r][1] = unfolded[0][r]
		next.rooms[r][2] = unfolded[1][r]
		next.rooms[r][3] = s.rooms[r][1]
	}
	return next, nil
}
