/* Copyright 2018 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package engine implements the matching state machine and the search
// driver: it expands a pattern against a target into a tree of residual
// matching obligations, and enumerates the resulting solutions either
// depth-first or fair-breadth-first.
package engine

import (
	"github.com/patterncore/pmatch/matcher"
	"github.com/patterncore/pmatch/pattern"
)

// atom is a matching obligation plus its Later-scheduling bookkeeping.
type atom struct {
	matcher.Atom
	deferrals int
}

// State is a partial matching state: bindings accumulated so far, and the
// stack of atoms still to resolve. An empty stack is a solution.
type State struct {
	Bindings pattern.Bindings
	stack    []atom

	// noProgress counts consecutive Later deferrals across this state's
	// lineage with no intervening non-Later expansion. It resets to 0
	// whenever any other atom is successfully consumed.
	noProgress int
}

// Solved reports whether this state's atom stack is empty, i.e. it
// represents a solution.
func (s State) Solved() bool { return len(s.stack) == 0 }

// Pending reports how many matching obligations remain on this state's
// atom stack. It exists for diagnostics (package tools' search-tree
// renderers), where the raw stack contents aren't exported.
func (s State) Pending() int { return len(s.stack) }

func seed(p pattern.Pattern, m matcher.Matcher, target pattern.Value) State {
	return State{
		Bindings: pattern.Empty,
		stack:    []atom{{Atom: matcher.Atom{Pattern: p, Matcher: m, Target: target}}},
	}
}

func (s State) withStack(stack []atom, progressed bool) State {
	n := s.noProgress
	if progressed {
		n = 0
	}
	return State{Bindings: s.Bindings, stack: stack, noProgress: n}
}
