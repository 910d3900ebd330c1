package burrow

import "github.com/geofduf/amphipod/internal/search"

// Graph exposes the burrow to the search package.
type Graph struct {
	// NoPrune keeps moves that take an amphipod out of its own, settled
	// room. Only useful to check that pruning never changes the answer.
	NoPrune bool
}

func (g Graph) Neighbors(s State) []search.Edge[State] {
	moves := Moves(s, !g.NoPrune)
	edges := make([]search.Edge[State], len(moves))
	for i, m := range moves {
		edges[i] = search.Edge[State]{To: m.Next, Cost: m.Cost}
	}
	return edges
}

func (g Graph) IsGoal(s State) bool {
	return s.IsGoal()
}

// Solve returns the least energy needed to organize s.
func Solve(s State) (uint32, error) {
	return search.Dijkstra[State](Graph{}, s)
}
