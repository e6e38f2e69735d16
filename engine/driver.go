package engine

import (
	"github.com/patterncore/pmatch/matcher"
	"github.com/patterncore/pmatch/pattern"
)

// Mode selects the search driver's enumeration order.
type Mode int

const (
	// BFS enumerates fairly: the frontier is a FIFO, so every finite
	// solution appears at a bounded step count even when a sibling
	// branch is infinite.
	BFS Mode = iota
	// DFS enumerates depth-first: solutions appear in left-depth-first
	// order over the pattern's choice tree.
	DFS
)

// Driver is a single-threaded, cooperative search over the state space a
// pattern/matcher/target seed produces. It holds its own frontier and
// advances it synchronously inside Next -- there is no background
// goroutine, so laziness is just "the caller hasn't called Next again
// yet."
type Driver struct {
	mode     Mode
	frontier []State

	// Trace, if non-nil, is called once per popped state with that state
	// and the children step produced for it (no children on a dead end;
	// nil children for a popped solved state, which is not expanded). It
	// exists purely for diagnostics (package tools'
	// search-tree renderers); a Driver with no Trace set pays nothing for
	// it beyond the nil check.
	Trace func(popped State, children []State)
}

// NewDriver builds a Driver seeded with the given initial states, usually
// a single state from Seed.
func NewDriver(mode Mode, seeds ...State) *Driver {
	return &Driver{mode: mode, frontier: append([]State(nil), seeds...)}
}

// Seed builds the single initial matching state for a top-level
// pattern/matcher/target triple: empty bindings, one atom on the stack.
func Seed(p pattern.Pattern, m matcher.Matcher, target pattern.Value) State {
	return seed(p, m, target)
}

// Next advances the search until it finds a solution or exhausts the
// frontier. It returns (bindings, true, nil) for a solution, (nil, false,
// nil) when the search is done, and (nil, false, err) when expansion hit
// one of the programmer-error kinds (ArityMismatch, UnsupportedPattern,
// Deadlock) -- at which point the whole search is abandoned and the
// driver reports no further solutions.
func (d *Driver) Next() (pattern.Bindings, bool, error) {
	for len(d.frontier) > 0 {
		var s State
		s, d.frontier = d.pop()

		if s.Solved() {
			if d.Trace != nil {
				d.Trace(s, nil)
			}
			return s.Bindings, true, nil
		}

		children, err := step(s)
		if err != nil {
			d.frontier = nil
			return nil, false, err
		}
		if d.Trace != nil {
			d.Trace(s, children)
		}
		d.frontier = d.push(d.frontier, children)
	}
	return nil, false, nil
}

func (d *Driver) pop() (State, []State) {
	switch d.mode {
	case DFS:
		last := len(d.frontier) - 1
		return d.frontier[last], d.frontier[:last]
	default: // BFS
		return d.frontier[0], d.frontier[1:]
	}
}

func (d *Driver) push(frontier []State, children []State) []State {
	switch d.mode {
	case DFS:
		// Push in reverse so the first child ends up on top, and is
		// therefore explored first -- left-depth-first order.
		out := frontier
		for i := len(children) - 1; i >= 0; i-- {
			out = append(out, children[i])
		}
		return out
	default: // BFS
		return append(frontier, children...)
	}
}
