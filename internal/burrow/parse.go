package burrow

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/maps"
)

// MalformedInputError reports a diagram that does not describe a
// solvable burrow.
type MalformedInputError struct {
	Line   int // 1-based, 0 when the problem is not tied to a line
	Reason string
}

func (e *MalformedInputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed input on line %d: %s", e.Line, e.Reason)
	}
	return "malformed input: " + e.Reason
}

var hallwayAlphabet = func() mapset.Set[rune] {
	set := mapset.New[rune]()
	for _, r := range ".ABCD" {
		set.Put(r)
	}
	return set
}()

// ParseString is Parse over a string.
func ParseString(input string) (State, error) {
	return Parse(strings.NewReader(input))
}

// Parse reads a burrow diagram such as
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// The hallway line is optional and defaults to empty. Every other line
// holding exactly four cells (amphipods or '.') is a row of the rooms, top
// row first.
func Parse(r io.Reader) (State, error) {

	var (
		hallway    [HallwayLen]Type
		rows       [][Rooms]Type
		sawHallway bool
	)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")

		if len(text) > 2 && text[0] == '#' && text[len(text)-1] == '#' {
			if core := text[1 : len(text)-1]; !strings.Contains(core, "#") {
				if sawHallway {
					return State{}, &MalformedInputError{Line: line, Reason: "second hallway line"}
				}
				if err := parseHallway(core, &hallway); err != nil {
					return State{}, &MalformedInputError{Line: line, Reason: err.Error()}
				}
				sawHallway = true
				continue
			}
		}

		// Room rows may have free cells when the diagram is taken mid-way.
		var row [Rooms]Type
		cells, amphipods := 0, 0
		for _, c := range text {
			if t, ok := TypeFromRune(c); ok {
				if cells < Rooms {
					row[cells] = t
				}
				cells++
				if t != Empty {
					amphipods++
				}
			}
		}
		switch {
		case cells == Rooms:
			rows = append(rows, row)
		case amphipods > 0:
			return State{}, &MalformedInputError{Line: line, Reason: fmt.Sprintf("room row has %d cells, want %d", cells, Rooms)}
		}
	}
	if err := scanner.Err(); err != nil {
		return State{}, fmt.Errorf("reading diagram: %w", err)
	}

	if len(rows) == 0 {
		return State{}, &MalformedInputError{Reason: "no room rows"}
	}
	if len(rows) > MaxDepth {
		return State{}, &MalformedInputError{Reason: fmt.Sprintf("%d room rows, at most %d supported", len(rows), MaxDepth)}
	}

	var rooms [Rooms][]Type
	for c := 0; c < Rooms; c++ {
		rooms[c] = make([]Type, len(rows))
		for d, row := range rows {
			rooms[c][d] = row[c]
		}
	}
	s, err := New(hallway, rooms)
	if err != nil {
		return State{}, &MalformedInputError{Reason: err.Error()}
	}
	if err := checkCensus(s); err != nil {
		return State{}, err
	}
	return s, nil

}

func parseHallway(core string, hallway *[HallwayLen]Type) error {
	if len(core) != HallwayLen {
		return fmt.Errorf("hallway has %d cells, want %d", len(core), HallwayLen)
	}
	for i, c := range core {
		if !hallwayAlphabet.Has(c) {
			return fmt.Errorf("invalid hallway cell %q at %d", c, i)
		}
		hallway[i], _ = TypeFromRune(c)
	}
	return nil
}

// checkCensus makes sure every room can be filled exactly.
func checkCensus(s State) error {
	counts := s.Census()
	for t := A; t <= D; t++ {
		if _, ok := counts[t]; !ok {
			counts[t] = 0
		}
	}
	types := maps.Keys(counts)
	slices.Sort(types)
	var bad []string
	for _, t := range types {
		if counts[t] != s.Depth() {
			bad = append(bad, fmt.Sprintf("%d %s", counts[t], t))
		}
	}
	if len(bad) > 0 {
		return &MalformedInputError{Reason: fmt.Sprintf("found %s for rooms of depth %d", strings.Join(bad, ", "), s.Depth())}
	}
	return nil
}
