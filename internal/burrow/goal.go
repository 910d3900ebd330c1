package burrow

// IsGoal reports whether every amphipod is home and the hallway is empty.
func (s State) IsGoal() bool {
	for _, v := range s.h {
		if v != Empty {
			return false
		}
	}
	for r := 0; r < Rooms; r++ {
		want := Type(r) + A
		for d := 0; d < int(s.depth); d++ {
			if s.rooms[r][d] != want {
				return false
			}
		}
	}
	return true
}
