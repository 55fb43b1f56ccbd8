package rules

// Transition names which row of the Conway rule table applied to a cell.
type Transition uint8

const (
	// Unchanged covers a dead cell that does not see exactly three live neighbors.
	Unchanged Transition = iota
	// Underpopulation kills a live cell with fewer than two live neighbors.
	Underpopulation
	// Survival keeps a live cell with two or three live neighbors.
	Survival
	// Overpopulation kills a live cell with more than three live neighbors.
	Overpopulation
	// Reproduction brings a dead cell with exactly three live neighbors to life.
	Reproduction
)

var transitionNames = [...]string{
	Unchanged:       "unchanged",
	Underpopulation: "underpopulation",
	Survival:        "survival",
	Overpopulation:  "overpopulation",
	Reproduction:    "reproduction",
}

func (t Transition) String() string {
	if int(t) < len(transitionNames) {
		return transitionNames[t]
	}
	return "unknown"
}

// Alive reports whether the cell is alive after the transition.
func (t Transition) Alive() bool {
	return t == Survival || t == Reproduction
}

/*
Classify applies Conway's Game of Life rules to a cell's previous state and its previous
live-neighbor count.

	alive, n < 2       -> Underpopulation
	alive, n == 2 || 3 -> Survival
	alive, n > 3       -> Overpopulation
	dead,  n == 3      -> Reproduction
	dead,  otherwise   -> Unchanged
*/
func Classify(alive bool, neighbors int) Transition {
	switch {
	case alive && neighbors < 2:
		return Underpopulation
	case alive && neighbors > 3:
		return Overpopulation
	case alive:
		return Survival
	case neighbors == 3:
		return Reproduction
	default:
		return Unchanged
	}
}

// ApplyConwayRules reports whether a cell is alive in the next generation.
func ApplyConwayRules(neighbors int, alive bool) bool {
	return Classify(alive, neighbors).Alive()
}
