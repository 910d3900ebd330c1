// Package search finds the cheapest path to a goal in an implicit graph.
//
// Vertices are discovered on the fly through Graph.Neighbors, so the graph
// never has to be built up front. The frontier does not support
// decrease-key: improved vertices are pushed again and outdated entries
// are dropped when they are popped.
package search

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/heap"
)

// ErrNoSolution is returned when every reachable vertex was explored
// without meeting a goal.
var ErrNoSolution = errors.New("no path to a goal")

// Edge leads to To for Cost. Costs must be positive.
type Edge[S comparable] struct {
	To   S
	Cost uint32
}

// Graph is an implicit graph.
type Graph[S comparable] interface {
	Neighbors(s S) []Edge[S]
	IsGoal(s S) bool
}

// Stats describes the work done by one search.
type Stats struct {
	Popped     int // entries taken off the frontier
	Stale      int // popped entries superseded by a cheaper one
	Expanded   int // vertices whose neighbors were generated
	Pushed     int // entries put on the frontier
	Discovered int // distinct vertices seen
}

func (s Stats) String() string {
	return fmt.Sprintf("popped=%d stale=%d expanded=%d pushed=%d discovered=%d",
		s.Popped, s.Stale, s.Expanded, s.Pushed, s.Discovered)
}

// Result is the outcome of a successful search.
type Result struct {
	Cost  uint32
	Stats Stats
}

type entry[S comparable] struct {
	cost  uint32
	state S
}

// Dijkstra returns the cost of the cheapest path from start to any goal.
func Dijkstra[S comparable](g Graph[S], start S) (uint32, error) {
	res, err := Run(g, start)
	return res.Cost, err
}

// Run is Dijkstra with statistics. On ErrNoSolution the returned Result
// still carries the statistics of the exhausted search.
func Run[S comparable](g Graph[S], start S) (Result, error) {

	var stats Stats

	frontier := heap.New[entry[S]](func(a, b entry[S]) bool {
		return a.cost < b.cost
	})
	best := map[S]uint32{start: 0}
	frontier.Push(entry[S]{cost: 0, state: start})
	stats.Pushed++

	for frontier.Size() > 0 {
		e, _ := frontier.Pop()
		stats.Popped++

		if e.cost > best[e.state] {
			stats.Stale++
			continue
		}

		if g.IsGoal(e.state) {
			stats.Discovered = len(best)
			return Result{Cost: e.cost, Stats: stats}, nil
		}

		stats.Expanded++
		for _, edge := range g.Neighbors(e.state) {
			if edge.Cost == 0 {
				panic(fmt.Sprintf("search: zero-cost edge from %v to %v", e.state, edge.To))
			}
			cost := e.cost + edge.Cost
			if known, ok := best[edge.To]; ok && cost >= known {
				continue
			}
			best[edge.To] = cost
			frontier.Push(entry[S]{cost: cost, state: edge.To})
			stats.Pushed++
		}
	}

	stats.Discovered = len(best)
	return Result{Stats: stats}, fmt.Errorf("%w after expanding %d states", ErrNoSolution, stats.Expanded)

}
